package cli

import (
	"fmt"

	"yodiet/internal/models"
	"yodiet/internal/services"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" default:"1" help:"Show the logged-in profile."`
	Edit ProfileEditCmd `cmd:"" help:"Edit profile fields."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}
	fmt.Printf("Username:   %s\n", user.UserName)
	fmt.Printf("Name:       %s %s\n", user.FirstName, user.LastName)
	fmt.Printf("Email:      %s\n", user.Email)
	fmt.Printf("Registered: %s\n", user.CreatedAt.Format("2006-01-02"))
	return nil
}

type ProfileEditCmd struct {
	Username  string  `help:"New username."`
	FirstName string  `help:"New first name."`
	LastName  *string `help:"New last name. Pass an empty string to clear it."`
	Email     string  `help:"New email address."`
}

// mergeUpdate overlays the set flags on the current profile. Last name is a
// pointer so --last-name="" can clear it, the one field allowed to be empty.
func (c *ProfileEditCmd) mergeUpdate(user models.User) services.ProfileUpdate {
	update := services.ProfileUpdate{
		UserName:  user.UserName,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	if c.Username != "" {
		update.UserName = c.Username
	}
	if c.FirstName != "" {
		update.FirstName = c.FirstName
	}
	if c.LastName != nil {
		update.LastName = *c.LastName
	}
	if c.Email != "" {
		update.Email = c.Email
	}
	return update
}

func (c *ProfileEditCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	updated, err := ctx.Profile.UpdateProfile(user.ID, c.mergeUpdate(user))
	if err != nil {
		return err
	}
	fmt.Printf("Profile updated: %s (%s %s) <%s>\n", updated.UserName, updated.FirstName, updated.LastName, updated.Email)
	return nil
}
