package marketplace

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/datazone"

	"github.com/suse/saas-tools/pkg/apperror"
	"github.com/suse/saas-tools/pkg/role"
)

// Subscription is a DataZone subscription as reported to callers.
type Subscription struct {
	ID                    string `json:"id"`
	DomainID              string `json:"domainId"`
	Status                string `json:"status"`
	SubscriptionRequestID string `json:"subscriptionRequestId"`
	RetainPermissions     bool   `json:"retainPermissions"`
	CreatedBy             string `json:"createdBy"`
	CreatedAt             string `json:"createdAt"`
	UpdatedBy             string `json:"updatedBy"`
	UpdatedAt             string `json:"updatedAt"`
}

// MissingSubscriptionInputRecord is reported when a subscription lookup
// lacks a domain, a subscription or roles.
func MissingSubscriptionInputRecord() apperror.Record {
	return apperror.WithCode(http.StatusInternalServerError, "no domain_id/subscription_id and/or role provided", apperror.CodeInternalError)
}

// ResolveSubscription reads a DataZone subscription, trying each region of
// roles in sorted order until one answers. Failures are not reclassified.
//
// Returned errors are apperror.Record values.
func (r *Resolver) ResolveSubscription(ctx context.Context, domainID, subscriptionID string, roles role.Config) (Subscription, error) {
	if domainID == "" || subscriptionID == "" || len(roles) == 0 {
		return Subscription{}, r.fail(MissingSubscriptionInputRecord())
	}

	var sub Subscription
	_, failures := r.roles.Fallback(ctx, roles, nil, func(ctx context.Context, assumed role.Assumed) error {
		client := r.newDataZone(assumed.Region, assumed.Credentials.Provider())
		out, err := client.GetSubscription(ctx, &datazone.GetSubscriptionInput{
			DomainIdentifier: aws.String(domainID),
			Identifier:       aws.String(subscriptionID),
		})
		if err != nil {
			return fmt.Errorf("getting subscription %s: %w", subscriptionID, err)
		}
		sub = Subscription{
			ID:                    aws.ToString(out.Id),
			DomainID:              aws.ToString(out.DomainId),
			Status:                string(out.Status),
			SubscriptionRequestID: aws.ToString(out.SubscriptionRequestId),
			RetainPermissions:     aws.ToBool(out.RetainPermissions),
			CreatedBy:             aws.ToString(out.CreatedBy),
			CreatedAt:             formatTime(out.CreatedAt),
			UpdatedBy:             aws.ToString(out.UpdatedBy),
			UpdatedAt:             formatTime(out.UpdatedAt),
		}
		return nil
	})
	if len(failures) > 0 {
		return Subscription{}, failures[len(failures)-1]
	}
	return sub, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
