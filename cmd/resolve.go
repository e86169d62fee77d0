package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/suse/saas-tools/pkg/aws"
	"github.com/suse/saas-tools/pkg/marketplace"
	"github.com/suse/saas-tools/pkg/role"
)

var ResolveCustomerCmd = &cli.Command{
	Name:  "resolve-customer",
	Usage: "Resolve a marketplace registration token into a customer and its entitlements.",
	Flags: append([]cli.Flag{TokenFlag}, ResolverFlags...),
	Action: func(cCtx *cli.Context) error {
		resolver, roles, err := setupResolver(cCtx)
		if err != nil {
			return err
		}

		identity, err := resolver.ResolveCustomer(cCtx.Context, cCtx.String(TokenFlag.Name), roles)
		if err != nil {
			return fmt.Errorf("resolving customer: %w", err)
		}
		entitlements, err := resolver.ResolveEntitlements(cCtx.Context, identity.CustomerID, identity.ProductCode, roles)
		if err != nil {
			return fmt.Errorf("resolving entitlements: %w", err)
		}

		return printJSON(map[string]any{
			"marketplaceIdentifier": marketplace.MarketplaceIdentifier,
			"marketplaceAccountId":  identity.AccountID,
			"customerIdentifier":    identity.CustomerID,
			"productCode":           identity.ProductCode,
			"entitlements":          entitlements,
		})
	},
}

var EntitlementsCmd = &cli.Command{
	Name:  "entitlements",
	Usage: "List the entitlements a customer holds for a product.",
	Flags: append([]cli.Flag{CustomerFlag, ProductFlag}, ResolverFlags...),
	Action: func(cCtx *cli.Context) error {
		resolver, roles, err := setupResolver(cCtx)
		if err != nil {
			return err
		}

		entitlements, err := resolver.ResolveEntitlements(cCtx.Context, cCtx.String(CustomerFlag.Name), cCtx.String(ProductFlag.Name), roles)
		if err != nil {
			return fmt.Errorf("resolving entitlements: %w", err)
		}
		return printJSON(entitlements)
	},
}

var SubscriptionCmd = &cli.Command{
	Name:  "subscription",
	Usage: "Show a DataZone subscription.",
	Flags: append([]cli.Flag{DomainFlag, SubscriptionFlag}, ResolverFlags...),
	Action: func(cCtx *cli.Context) error {
		resolver, roles, err := setupResolver(cCtx)
		if err != nil {
			return err
		}

		sub, err := resolver.ResolveSubscription(cCtx.Context, cCtx.String(DomainFlag.Name), cCtx.String(SubscriptionFlag.Name), roles)
		if err != nil {
			return fmt.Errorf("resolving subscription: %w", err)
		}
		return printJSON(sub)
	},
}

func setupResolver(cCtx *cli.Context) (*marketplace.Resolver, role.Config, error) {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return nil, nil, err
	}
	roles, err := aws.LoadRoles(cCtx.Context, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("loading role config: %w", err)
	}
	log.Debugw("Loaded role config", "path", cfg.RoleConfigPath, "regions", roles.Regions())
	return aws.NewMarketplaceResolver(cfg), roles, nil
}
