package cli

import (
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"yodiet/internal/security"
)

// ResetPasswordCmd is an admin-style recovery path: it sets a random
// temporary password for the account, bypassing the login flow.
type ResetPasswordCmd struct {
	Email string `arg:"" help:"Email of the account to reset."`
}

func (c *ResetPasswordCmd) Run(ctx *Context) error {
	email := strings.ToLower(strings.TrimSpace(c.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	user, found, err := ctx.Users.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !found {
		return fmt.Errorf("user %s not found", email)
	}

	temporaryPassword, err := security.RandomTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	if err := ctx.Users.Save(&user); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	return nil
}
