package marketplace

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/marketplacemetering"

	"github.com/suse/saas-tools/pkg/apperror"
	"github.com/suse/saas-tools/pkg/role"
)

// CustomerIdentity is the customer a registration token belongs to. Fields
// the marketplace did not return are empty.
type CustomerIdentity struct {
	CustomerID  string `json:"customerIdentifier"`
	AccountID   string `json:"customerAWSAccountId"`
	ProductCode string `json:"productCode"`
}

// MissingTokenRecord is reported when no registration token was supplied.
func MissingTokenRecord() apperror.Record {
	return apperror.WithCode(http.StatusUnprocessableEntity, "no marketplace token provided", apperror.CodeMissingToken)
}

// ResolveCustomer exchanges a URL encoded marketplace registration token for
// the identity of the customer. Credentials come from the first region of
// roles whose role can be assumed and the token is resolved in that region.
//
// Returned errors are apperror.Record values.
func (r *Resolver) ResolveCustomer(ctx context.Context, urlEncodedToken string, roles role.Config) (CustomerIdentity, error) {
	if urlEncodedToken == "" {
		return CustomerIdentity{}, r.fail(MissingTokenRecord())
	}
	if len(roles) == 0 {
		return CustomerIdentity{}, r.fail(role.NoRoleRecord())
	}

	token, err := url.PathUnescape(urlEncodedToken)
	if err != nil {
		msg := fmt.Sprintf("invalid marketplace token: %s", err)
		return CustomerIdentity{}, r.fail(apperror.WithCode(http.StatusUnprocessableEntity, msg, apperror.CodeMissingToken))
	}

	// failures are logged by the fallback walk itself
	assumed, failures := r.roles.Fallback(ctx, roles, apperror.TokenRules, nil)
	if len(failures) > 0 {
		return CustomerIdentity{}, failures[len(failures)-1]
	}

	ctx, cancel := r.roles.AttemptContext(ctx)
	defer cancel()

	client := r.newMetering(assumed.Region, assumed.Credentials.Provider())
	out, err := client.ResolveCustomer(ctx, &marketplacemetering.ResolveCustomerInput{
		RegistrationToken: aws.String(token),
	})
	if err != nil {
		return CustomerIdentity{}, r.fail(apperror.TokenRules.Apply(apperror.FromError(err)))
	}

	return CustomerIdentity{
		CustomerID:  aws.ToString(out.CustomerIdentifier),
		AccountID:   aws.ToString(out.CustomerAWSAccountId),
		ProductCode: aws.ToString(out.ProductCode),
	}, nil
}

func (r *Resolver) fail(rec apperror.Record) apperror.Record {
	apperror.Log(r.log(), rec)
	return rec
}
