package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"yodiet/internal/models"
	"yodiet/internal/services"
)

type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a personal goal."`
	List   GoalListCmd   `cmd:"" default:"1" help:"List the logged-in user's goals."`
	Update GoalUpdateCmd `cmd:"" help:"Update a goal's current value."`
	Delete GoalDeleteCmd `cmd:"" help:"Delete a goal."`
	Watch  GoalWatchCmd  `cmd:"" help:"Follow goals live until interrupted."`
}

type GoalAddCmd struct {
	Name        string  `arg:"" help:"Goal name."`
	Target      float64 `short:"t" help:"Target value." required:""`
	Unit        string  `short:"u" help:"Unit label, e.g. kg."`
	Type        string  `help:"Free-form goal type."`
	Description string  `short:"d" help:"Free-form description."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}
	goal := models.Goal{
		UserID:      user.ID,
		Name:        c.Name,
		Type:        c.Type,
		Description: c.Description,
		TargetValue: c.Target,
		Unit:        c.Unit,
	}
	if err := ctx.Goals.AddGoal(&goal); err != nil {
		return err
	}
	fmt.Printf("Added goal #%d: %s (target %g %s)\n", goal.ID, goal.Name, goal.TargetValue, goal.Unit)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}
	goals, err := ctx.Goals.GoalsForUser(user.ID)
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Println("No goals yet.")
		return nil
	}
	for _, goal := range goals {
		fmt.Printf("#%d %s: %g/%g %s (%.0f%%)\n",
			goal.ID, goal.Name, goal.CurrentValue, goal.TargetValue, goal.Unit, goal.Progress()*100)
	}
	return nil
}

type GoalWatchCmd struct {
	All bool `help:"Watch every user's goals instead of only yours."`
}

func (c *GoalWatchCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	watchCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var updates <-chan []models.Goal
	if c.All {
		updates, err = ctx.Goals.WatchAllGoals(watchCtx)
	} else {
		updates, err = ctx.Goals.WatchGoalsForUser(watchCtx, user.ID)
	}
	if err != nil {
		return err
	}

	fmt.Println("Watching goals, press Ctrl-C to stop.")
	for goals := range updates {
		fmt.Println("---")
		if len(goals) == 0 {
			fmt.Println("No goals yet.")
			continue
		}
		for _, goal := range goals {
			fmt.Printf("#%d %s: %g/%g %s (%.0f%%)\n",
				goal.ID, goal.Name, goal.CurrentValue, goal.TargetValue, goal.Unit, goal.Progress()*100)
		}
	}
	return nil
}

type GoalUpdateCmd struct {
	Goal  uint    `arg:"" help:"Goal ID."`
	Value float64 `arg:"" help:"New current value."`
}

func (c *GoalUpdateCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}
	goal, found, err := ctx.Goals.Goal(c.Goal)
	if err != nil {
		return err
	}
	if !found || goal.UserID != user.ID {
		return &services.UserError{Message: "Goal not found"}
	}
	goal.CurrentValue = c.Value
	if err := ctx.Goals.UpdateGoal(&goal); err != nil {
		return err
	}
	fmt.Printf("Goal #%d is now at %g/%g %s\n", goal.ID, goal.CurrentValue, goal.TargetValue, goal.Unit)
	return nil
}

type GoalDeleteCmd struct {
	Goal uint `arg:"" help:"Goal ID."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}
	goal, found, err := ctx.Goals.Goal(c.Goal)
	if err != nil {
		return err
	}
	if !found || goal.UserID != user.ID {
		return &services.UserError{Message: "Goal not found"}
	}
	if err := ctx.Goals.DeleteGoal(goal.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted goal #%d\n", goal.ID)
	return nil
}
