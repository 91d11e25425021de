// Command client is a small storefront CLI over the sushi bar API. It keeps
// the cart in a local snapshot file so it survives between invocations, the
// same way the web storefront mirrors its cart to local storage.
//
// Usage:
//
//	client menu
//	client add <itemId> [quantity]
//	client set <itemId> <quantity>
//	client remove <itemId>
//	client cart
//	client clear
//	client checkout -name NAME -email EMAIL -phone PHONE -address ADDR [-contact NOTE]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/sakura-sushi/backend/internal/checkout"
	"github.com/sakura-sushi/backend/internal/models"
	"github.com/sakura-sushi/backend/pkg/cart"
	"github.com/sakura-sushi/backend/pkg/logger"
)

func main() {
	apiURL := envOr("SUSHI_API_URL", "http://localhost:3001")
	cartPath := envOr("SUSHI_CART_FILE", "sushi_cart.json")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log := logger.New(envOr("LOG_LEVEL", "warn"))
	client := checkout.NewClient(apiURL)
	c := cart.New(cart.NewFileStorage(cartPath), log)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "menu":
		err = printMenu(ctx, client)
	case "add":
		err = addItem(ctx, client, c, os.Args[2:])
	case "set":
		err = setQuantity(c, os.Args[2:])
	case "remove":
		err = removeItem(c, os.Args[2:])
	case "cart":
		printCart(c)
	case "clear":
		c.Clear()
		fmt.Println("Cart cleared.")
	case "checkout":
		err = runCheckout(ctx, client, c, log, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: client <menu|add|set|remove|cart|clear|checkout> [args]")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printMenu(ctx context.Context, client *checkout.Client) error {
	items, err := client.Menu(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		marks := ""
		if item.Spicy {
			marks += " [spicy]"
		}
		if item.Vegetarian {
			marks += " [veg]"
		}
		if item.Popular {
			marks += " *"
		}
		fmt.Printf("%2d. %-16s €%-6.2f %-8s %s%s\n",
			item.ID, item.Name, item.Price, item.Category, item.Description, marks)
	}
	return nil
}

func addItem(ctx context.Context, client *checkout.Client, c *cart.Cart, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("add requires an item id")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}

	quantity := 1
	if len(args) > 1 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil || quantity < 1 {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
	}

	item, err := client.MenuItem(ctx, id)
	if err != nil {
		return err
	}

	c.Add(*item, quantity)
	fmt.Printf("Added %dx %s. Cart: %d items, €%.2f\n",
		quantity, item.Name, c.TotalItems(), c.TotalPrice())
	return nil
}

func setQuantity(c *cart.Cart, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("set requires an item id and a quantity")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}

	c.UpdateQuantity(id, quantity)
	printCart(c)
	return nil
}

func removeItem(c *cart.Cart, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("remove requires an item id")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}

	c.Remove(id)
	printCart(c)
	return nil
}

func printCart(c *cart.Cart) {
	items := c.Items()
	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}

	for _, item := range items {
		fmt.Printf("%2dx %-16s €%.2f\n", item.Quantity, item.Name, item.Price*float64(item.Quantity))
	}
	fmt.Printf("Total: %d items, €%.2f\n", c.TotalItems(), c.TotalPrice())
}

func runCheckout(ctx context.Context, client *checkout.Client, c *cart.Cart, log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	name := fs.String("name", "", "customer name")
	email := fs.String("email", "", "customer email")
	phone := fs.String("phone", "", "customer phone")
	address := fs.String("address", "", "delivery address")
	contact := fs.String("contact", "", "extra contact note")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *address == "" {
		return fmt.Errorf("checkout requires at least -name and -address")
	}

	svc := checkout.NewService(c, client, log)

	conf, err := svc.Checkout(ctx, models.Customer{
		Name:  *name,
		Email: *email,
		Phone: *phone,
	}, *address, *contact)
	if err != nil {
		return fmt.Errorf("checkout failed, cart preserved: %w", err)
	}

	fmt.Printf("Order confirmed: %s (€%.2f)\n", conf.Order.OrderNumber, conf.Order.Total)
	fmt.Printf("Estimated delivery: %s\n", conf.Order.EstimatedDelivery.Local().Format("15:04"))
	return nil
}
