// Package main provides CLI for tenant management.
// Usage: tenant init
//        tenant create --slug acme --name "ACME Leilões"
//        tenant list
//        tenant suspend <tenant-id>
//        tenant activate <tenant-id>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"arremate/internal/core/tenant"
	"arremate/internal/infrastructure/storage/postgres"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "init":
		initSchema(ctx)
	case "create":
		createTenant(ctx)
	case "list":
		listTenants(ctx)
	case "suspend":
		setStatus(ctx, tenant.StatusSuspended)
	case "activate":
		setStatus(ctx, tenant.StatusActive)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Arremate Tenant Management CLI

Usage:
  tenant <command> [options]

Commands:
  init      Apply the service schema to the database
  create    Create a new tenant
  list      List all tenants
  suspend   Suspend a tenant
  activate  Activate a suspended tenant
  help      Show this help

Environment Variables:
  DATABASE_URL    Connection string for the shared database (required)

Examples:
  tenant init
  tenant create --slug acme --name "ACME Leilões"
  tenant list
  tenant suspend <tenant-uuid>
  tenant activate <tenant-uuid>`)
}

func getPool(ctx context.Context) *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Println("Error: DATABASE_URL environment variable is required")
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	return pool
}

func initSchema(ctx context.Context) {
	pool := getPool(ctx)
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Printf("Error applying schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Schema applied")
}

func createTenant(ctx context.Context) {
	var slug, name, plan string

	// Parse arguments
	for i := 2; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "--slug":
			if i+1 < len(os.Args) {
				slug = os.Args[i+1]
				i++
			}
		case "--name":
			if i+1 < len(os.Args) {
				name = os.Args[i+1]
				i++
			}
		case "--plan":
			if i+1 < len(os.Args) {
				plan = os.Args[i+1]
				i++
			}
		}
	}

	input := tenant.CreateTenantInput{
		Slug:        slug,
		DisplayName: name,
		Plan:        tenant.Plan(plan),
	}
	if err := input.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Usage: tenant create --slug <slug> --name <name> [--plan standard|premium|enterprise]")
		os.Exit(1)
	}

	pool := getPool(ctx)
	defer pool.Close()

	registry := tenant.NewPostgresRegistry(pool)
	t := &tenant.Tenant{
		Slug:        input.Slug,
		DisplayName: input.DisplayName,
		Plan:        input.Plan,
	}
	if err := registry.Create(ctx, t); err != nil {
		fmt.Printf("Error creating tenant: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Tenant created\n  ID:   %s\n  Slug: %s\n  Name: %s\n", t.ID, t.Slug, t.DisplayName)
}

func listTenants(ctx context.Context) {
	pool := getPool(ctx)
	defer pool.Close()

	registry := tenant.NewPostgresRegistry(pool)
	tenants, err := registry.ListAll(ctx)
	if err != nil {
		fmt.Printf("Error listing tenants: %v\n", err)
		os.Exit(1)
	}

	if len(tenants) == 0 {
		fmt.Println("No tenants found")
		return
	}

	fmt.Printf("%-38s %-20s %-10s %s\n", "ID", "SLUG", "STATUS", "NAME")
	for _, t := range tenants {
		fmt.Printf("%-38s %-20s %-10s %s\n", t.ID, t.Slug, t.Status, t.DisplayName)
	}
}

func setStatus(ctx context.Context, status tenant.Status) {
	if len(os.Args) < 3 {
		fmt.Printf("Usage: tenant %s <tenant-uuid>\n", os.Args[1])
		os.Exit(1)
	}
	tenantID := os.Args[2]

	pool := getPool(ctx)
	defer pool.Close()

	registry := tenant.NewPostgresRegistry(pool)
	if err := registry.UpdateStatusByID(ctx, tenantID, status); err != nil {
		fmt.Printf("Error updating tenant status: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Tenant %s is now %s\n", tenantID, status)
}
