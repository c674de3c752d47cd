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

type MealCmd struct {
	Add    MealAddCmd    `cmd:"" help:"Add a meal to the catalog."`
	List   MealListCmd   `cmd:"" default:"1" help:"List the meal catalog."`
	Update MealUpdateCmd `cmd:"" help:"Update a meal's nutrition facts."`
	Delete MealDeleteCmd `cmd:"" help:"Delete a meal."`
	Watch  MealWatchCmd  `cmd:"" help:"Follow the catalog live until interrupted."`
}

type MealAddCmd struct {
	Title   string `arg:"" help:"Meal title."`
	Kcal    int    `short:"k" help:"Calories." required:""`
	Fat     int    `help:"Fat in grams."`
	Carbs   int    `help:"Carbohydrates in grams."`
	Protein int    `help:"Protein in grams."`
	Image   string `help:"Image reference."`
}

func (c *MealAddCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	meal := models.Meal{
		Title:    c.Title,
		ImageRef: c.Image,
		Kcal:     c.Kcal,
		Fat:      c.Fat,
		Carbs:    c.Carbs,
		Protein:  c.Protein,
	}
	if err := ctx.Meals.AddMeal(&meal); err != nil {
		return err
	}
	fmt.Printf("Added meal #%d: %s (%d kcal)\n", meal.ID, meal.Title, meal.Kcal)
	return nil
}

type MealListCmd struct{}

func (c *MealListCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	meals, err := ctx.Meals.Meals()
	if err != nil {
		return err
	}
	if len(meals) == 0 {
		fmt.Println("No meals yet.")
		return nil
	}
	for _, meal := range meals {
		fmt.Printf("#%d %s: %d kcal, %dg fat, %dg carbs, %dg protein\n",
			meal.ID, meal.Title, meal.Kcal, meal.Fat, meal.Carbs, meal.Protein)
	}
	return nil
}

type MealWatchCmd struct{}

func (c *MealWatchCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}

	watchCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	updates, err := ctx.Meals.WatchMeals(watchCtx)
	if err != nil {
		return err
	}

	fmt.Println("Watching meals, press Ctrl-C to stop.")
	for meals := range updates {
		fmt.Println("---")
		if len(meals) == 0 {
			fmt.Println("No meals yet.")
			continue
		}
		for _, meal := range meals {
			fmt.Printf("#%d %s: %d kcal\n", meal.ID, meal.Title, meal.Kcal)
		}
	}
	return nil
}

type MealUpdateCmd struct {
	Meal    uint   `arg:"" help:"Meal ID."`
	Title   string `help:"New title."`
	Kcal    int    `help:"New calories." default:"-1"`
	Fat     int    `help:"New fat in grams." default:"-1"`
	Carbs   int    `help:"New carbohydrates in grams." default:"-1"`
	Protein int    `help:"New protein in grams." default:"-1"`
}

func (c *MealUpdateCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	meal, found, err := ctx.Meals.Meal(c.Meal)
	if err != nil {
		return err
	}
	if !found {
		return &services.UserError{Message: "Meal not found"}
	}
	if c.Title != "" {
		meal.Title = c.Title
	}
	if c.Kcal >= 0 {
		meal.Kcal = c.Kcal
	}
	if c.Fat >= 0 {
		meal.Fat = c.Fat
	}
	if c.Carbs >= 0 {
		meal.Carbs = c.Carbs
	}
	if c.Protein >= 0 {
		meal.Protein = c.Protein
	}
	if err := ctx.Meals.UpdateMeal(&meal); err != nil {
		return err
	}
	fmt.Printf("Updated meal #%d: %s (%d kcal)\n", meal.ID, meal.Title, meal.Kcal)
	return nil
}

type MealDeleteCmd struct {
	Meal uint `arg:"" help:"Meal ID."`
}

func (c *MealDeleteCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	if err := ctx.Meals.DeleteMeal(c.Meal); err != nil {
		return err
	}
	fmt.Printf("Deleted meal #%d\n", c.Meal)
	return nil
}
