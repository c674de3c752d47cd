package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"yodiet/internal/services"
)

type SignupCmd struct {
	Username  string `arg:"" help:"Unique username, at least 4 characters, no spaces."`
	Email     string `short:"e" help:"Email address." required:""`
	FirstName string `short:"f" help:"First name." required:""`
	LastName  string `short:"l" help:"Last name."`
}

func (c *SignupCmd) Run(ctx *Context) error {
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	err = ctx.Auth.SignUp(services.SignUpInput{
		UserName:  c.Username,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Password:  password,
	})
	if err != nil {
		return err
	}

	ctx.Log.Info("user registered", zap.String("username", c.Username))
	fmt.Printf("Account created for %s. Run `yodiet login %s` to sign in.\n", c.Username, c.Username)
	return nil
}

type LoginCmd struct {
	User string `arg:"" help:"Email or username."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	user, err := ctx.Auth.Login(c.User, password)
	if err != nil {
		return err
	}

	ctx.Log.Info("user logged in", zap.Uint("user_id", user.ID))
	fmt.Printf("Logged in as %s (%s %s)\n", user.UserName, user.FirstName, user.LastName)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	if err := ctx.Settings.SignOut(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

type WhoamiCmd struct {
	Follow bool `short:"f" help:"Keep printing as the active session changes."`
}

func (c *WhoamiCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}
	if !c.Follow {
		fmt.Printf("%s\t%s %s\t%s\n", user.UserName, user.FirstName, user.LastName, user.Email)
		return nil
	}

	watchCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	updates, err := ctx.Sessions.Watch(watchCtx)
	if err != nil {
		return err
	}
	for current := range updates {
		if current == nil {
			fmt.Println("(no active session)")
			continue
		}
		fmt.Printf("%s\t%s %s\t%s\n", current.UserName, current.FirstName, current.LastName, current.Email)
	}
	return nil
}
