package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type DeleteAccountCmd struct {
	Yes bool `help:"Confirm deletion without prompting."`
}

func (c *DeleteAccountCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}
	if !c.Yes {
		return errors.New("this permanently removes all local accounts, re-run with --yes to confirm")
	}
	if err := ctx.Settings.DeleteAccount(); err != nil {
		return err
	}
	ctx.Log.Info("account deleted", zap.Uint("user_id", user.ID))
	fmt.Println("Account deleted.")
	return nil
}
