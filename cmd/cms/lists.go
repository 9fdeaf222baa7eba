package main

import (
	"context"

	"cms/config"
	"cms/internal/core"
	infraauth "cms/internal/infra/auth"
)

func newLists(cfg *config.Config) map[string]core.ListConfig {
	return map[string]core.ListConfig{
		"User": {
			Fields: map[string]core.FieldConfig{
				"name":     core.Text(),
				"email":    core.Text(core.Unique(), core.Required()),
				"password": core.Password(infraauth.NewBcryptSecretWithCost(cfg.Auth.BcryptCost)),
				"isAdmin":  core.Checkbox(),
			},
			Access: core.ListAccess{
				Query:  core.AllowAll,
				Create: core.AllowAll,
			},
		},
	}
}

// isAdmin limits the admin UI to sessions whose data carries isAdmin: true.
// It requires isAdmin in auth.sessionData.
func isAdmin(_ context.Context, kctx *core.Context) (bool, error) {
	if kctx == nil || kctx.Session == nil {
		return false, nil
	}
	admin, _ := kctx.Session.Data["isAdmin"].(bool)

	return admin, nil
}
