package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/marketplaceentitlementservice"
	"github.com/aws/aws-sdk-go-v2/service/marketplaceentitlementservice/types"

	"github.com/suse/saas-tools/pkg/apperror"
	"github.com/suse/saas-tools/pkg/role"
)

// Value is the entitled quantity of a dimension. Only the field matching the
// dimension's type is meaningful; the others hold zero values.
type Value struct {
	BooleanValue bool    `json:"booleanValue"`
	DoubleValue  float64 `json:"doubleValue"`
	IntegerValue int64   `json:"integerValue"`
	StringValue  string  `json:"stringValue"`
}

// Entitlement is a normalized marketplace entitlement.
type Entitlement struct {
	Dimension      string `json:"dimension"`
	ExpirationDate string `json:"expirationDate"`
	Value          Value  `json:"value"`
}

// MissingEntitlementInputRecord is reported when an entitlement lookup lacks
// a customer, a product or roles.
func MissingEntitlementInputRecord() apperror.Record {
	return apperror.WithCode(http.StatusInternalServerError, "no customer_id/product_code and/or role provided", apperror.CodeInternalError)
}

// ResolveEntitlements lists the entitlements customerID holds for
// productCode. Each region of roles is tried in sorted order until one
// answers.
//
// Returned errors are apperror.Record values.
func (r *Resolver) ResolveEntitlements(ctx context.Context, customerID, productCode string, roles role.Config) ([]Entitlement, error) {
	if customerID == "" || productCode == "" || len(roles) == 0 {
		return nil, r.fail(MissingEntitlementInputRecord())
	}

	var raw []types.Entitlement
	_, failures := r.roles.Fallback(ctx, roles, apperror.EntitlementRules, func(ctx context.Context, assumed role.Assumed) error {
		client := r.newEntitlement(assumed.Region, assumed.Credentials.Provider())
		entitlements, err := listEntitlements(ctx, client, customerID, productCode)
		if err != nil {
			return err
		}
		raw = entitlements
		return nil
	})
	if len(failures) > 0 {
		return nil, failures[len(failures)-1]
	}
	return Normalize(raw), nil
}

func listEntitlements(ctx context.Context, client EntitlementClient, customerID, productCode string) ([]types.Entitlement, error) {
	input := &marketplaceentitlementservice.GetEntitlementsInput{
		ProductCode: aws.String(productCode),
		Filter: map[string][]string{
			string(types.GetEntitlementFilterNameCustomerIdentifier): {customerID},
		},
	}

	var entitlements []types.Entitlement
	for {
		out, err := client.GetEntitlements(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("getting entitlements for %s: %w", customerID, err)
		}
		entitlements = append(entitlements, out.Entitlements...)
		if aws.ToString(out.NextToken) == "" {
			return entitlements, nil
		}
		input.NextToken = out.NextToken
	}
}

// Normalize converts raw entitlements, coercing absent values to zero
// values. The result is never nil.
func Normalize(raw []types.Entitlement) []Entitlement {
	entitlements := make([]Entitlement, 0, len(raw))
	for _, e := range raw {
		entitlements = append(entitlements, normalize(e))
	}
	return entitlements
}

func normalize(e types.Entitlement) Entitlement {
	ent := Entitlement{
		Dimension:      aws.ToString(e.Dimension),
		ExpirationDate: formatTime(e.ExpirationDate),
	}
	if e.Value != nil {
		ent.Value = Value{
			BooleanValue: aws.ToBool(e.Value.BooleanValue),
			DoubleValue:  aws.ToFloat64(e.Value.DoubleValue),
			IntegerValue: int64(aws.ToInt32(e.Value.IntegerValue)),
			StringValue:  aws.ToString(e.Value.StringValue),
		}
	}
	return ent
}
