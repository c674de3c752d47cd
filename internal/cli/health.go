package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"yodiet/internal/models"
)

type HealthCmd struct {
	Add     HealthAddCmd     `cmd:"" help:"Add a tracked health goal."`
	List    HealthListCmd    `cmd:"" help:"List health goals."`
	Bump    HealthBumpCmd    `cmd:"" help:"Increment a goal's counter by one."`
	Record  HealthRecordCmd  `cmd:"" help:"Record an absolute value for a goal."`
	History HealthHistoryCmd `cmd:"" help:"Show a goal's progress history."`
	Week    HealthWeekCmd    `cmd:"" help:"Show this week's progress across all goals."`
	Watch   HealthWatchCmd   `cmd:"" help:"Follow daily goals live until interrupted."`
	Delete  HealthDeleteCmd  `cmd:"" help:"Delete a health goal."`
}

type HealthAddCmd struct {
	Title       string `arg:"" help:"Goal title, e.g. \"Drink water\"."`
	Target      int    `short:"t" help:"Target value." required:""`
	Unit        string `short:"u" help:"Unit label, e.g. glasses."`
	Description string `short:"d" help:"Free-form description."`
}

func (c *HealthAddCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	goal := models.HealthGoal{
		Title:       c.Title,
		Description: c.Description,
		TargetValue: c.Target,
		Unit:        c.Unit,
		GoalType:    models.GoalTypeDaily,
	}
	if err := ctx.Health.AddGoal(&goal); err != nil {
		return err
	}
	fmt.Printf("Added goal #%d: %s (0/%d %s)\n", goal.ID, goal.Title, goal.TargetValue, goal.Unit)
	return nil
}

type HealthListCmd struct {
	All bool `help:"Include non-daily goals."`
}

func (c *HealthListCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	goals, err := c.load(ctx)
	if err != nil {
		return err
	}
	printHealthGoals(goals)
	return nil
}

func (c *HealthListCmd) load(ctx *Context) ([]models.HealthGoal, error) {
	if c.All {
		return ctx.Health.Goals()
	}
	return ctx.Health.DailyGoals()
}

func printHealthGoals(goals []models.HealthGoal) {
	if len(goals) == 0 {
		fmt.Println("No health goals yet.")
		return
	}
	for _, goal := range goals {
		status := " "
		if goal.IsCompleted {
			status = "x"
		}
		fmt.Printf("[%s] #%d %s: %d/%d %s\n", status, goal.ID, goal.Title, goal.CurrentValue, goal.TargetValue, goal.Unit)
	}
}

type HealthBumpCmd struct {
	Goal uint `arg:"" help:"Goal ID."`
}

func (c *HealthBumpCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	value, err := ctx.Health.IncrementProgress(c.Goal)
	if err != nil {
		return err
	}
	fmt.Printf("Goal #%d is now at %d\n", c.Goal, value)
	return nil
}

type HealthRecordCmd struct {
	Goal  uint `arg:"" help:"Goal ID."`
	Value int  `arg:"" help:"Absolute value to record."`
}

func (c *HealthRecordCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	if err := ctx.Health.RecordProgress(c.Goal, c.Value); err != nil {
		return err
	}
	fmt.Printf("Recorded %d for goal #%d\n", c.Value, c.Goal)
	return nil
}

type HealthHistoryCmd struct {
	Goal uint `arg:"" help:"Goal ID."`
}

func (c *HealthHistoryCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	samples, err := ctx.Health.ProgressHistory(c.Goal)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		fmt.Println("No progress recorded yet.")
		return nil
	}
	for _, sample := range samples {
		completed := ""
		if sample.IsCompleted {
			completed = "  (completed)"
		}
		fmt.Printf("%s  %d%s\n", sample.Date.Format("2006-01-02 15:04"), sample.Value, completed)
	}
	return nil
}

type HealthWeekCmd struct{}

func (c *HealthWeekCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	entries, err := ctx.Health.WeeklyProgress()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Nothing recorded this week.")
		return nil
	}
	for _, entry := range entries {
		fmt.Printf("%s  %s: %d %s\n", entry.Date.Format("Mon 2006-01-02"), entry.Title, entry.Value, entry.Unit)
	}
	return nil
}

type HealthWatchCmd struct{}

// Run streams daily-goal snapshots, re-printing on every change until the
// process is interrupted.
func (c *HealthWatchCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}

	watchCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	updates, err := ctx.Health.WatchDailyGoals(watchCtx)
	if err != nil {
		return err
	}

	fmt.Println("Watching daily goals, press Ctrl-C to stop.")
	for goals := range updates {
		fmt.Println("---")
		printHealthGoals(goals)
	}
	return nil
}

type HealthDeleteCmd struct {
	Goal uint `arg:"" help:"Goal ID."`
}

func (c *HealthDeleteCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	if err := ctx.Health.DeleteGoal(c.Goal); err != nil {
		return err
	}
	fmt.Printf("Deleted goal #%d\n", c.Goal)
	return nil
}
