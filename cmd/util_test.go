package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suse/saas-tools/pkg/notification"
)

func TestReadMessage(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "message.json")
	err := os.WriteFile(path, []byte(`{
		"action": "subscribe-success",
		"customer-identifier": "cust-1",
		"product-code": "prod-1",
		"offer-identifier": "offer-1",
		"isFreeTrialTermPresent": "true"
	}`), 0o644)
	require.NoError(t, err)

	content, err := readMessage(path)
	require.NoError(t, err)
	require.Equal(t, notification.Content{
		Action:                 notification.ActionSubscribeSuccess,
		CustomerID:             "cust-1",
		ProductCode:            "prod-1",
		OfferID:                "offer-1",
		IsFreeTrialTermPresent: "true",
	}, content)

	_, err = readMessage(filepath.Join(dir, "missing.json"))
	require.ErrorContains(t, err, "reading message file")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o644))
	_, err = readMessage(broken)
	require.ErrorContains(t, err, "decoding message file")
}

func TestRequiredStringFlag(t *testing.T) {
	flag := RequiredStringFlag(RoleConfigFlag)
	require.True(t, flag.Required)
	require.False(t, RoleConfigFlag.Required)
	require.Equal(t, RoleConfigFlag.Name, flag.Name)
}
