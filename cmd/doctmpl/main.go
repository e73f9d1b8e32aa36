package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-doctmpl/pkg/catalog"
	"github.com/goliatone/go-doctmpl/pkg/prompt"
	"github.com/goliatone/go-doctmpl/pkg/registry"
)

func main() {
	catalogDir := flag.String("catalog", "templates", "directory holding template catalog files")
	list := flag.Bool("list", false, "list registered template names")
	show := flag.String("show", "", "print the named master template")
	create := flag.String("new", "", "clone the named template (interactive pick if empty with -interactive)")
	interactive := flag.Bool("interactive", false, "prompt for template choice and metadata")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	defs, err := catalog.LoadDir(*catalogDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	reg := registry.New()
	if err := catalog.Seed(reg, defs); err != nil {
		log.Fatalf("Failed to seed registry: %v", err)
	}

	switch {
	case *list:
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
	case *show != "":
		if err := emit(reg, *show, *output); err != nil {
			log.Fatalf("Failed to show template: %v", err)
		}
	case *create != "" || *interactive:
		if err := clone(ctx, reg, *create, *interactive, *output); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				os.Exit(1)
			}
			log.Fatalf("Failed to create template: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// emit prints the master under name without issuing a caller-owned clone;
// Create is still used so the printed graph can never alias the stored one.
func emit(reg *registry.Registry, name, output string) error {
	tmpl, err := reg.Create(name)
	if err != nil {
		return err
	}
	return write(catalog.FromTemplate(name, tmpl), output)
}

func clone(ctx context.Context, reg *registry.Registry, name string, interactive bool, output string) error {
	driver := prompt.New()

	if strings.TrimSpace(name) == "" {
		names := reg.Names()
		if len(names) == 0 {
			return fmt.Errorf("catalog registered no templates")
		}
		picked, err := prompt.PickTemplate(ctx, driver, names)
		if err != nil {
			return err
		}
		name = picked
	}

	tmpl, err := reg.Create(name)
	if err != nil {
		return err
	}

	if interactive {
		if err := prompt.FillMetadata(ctx, driver, tmpl); err != nil {
			return err
		}
	}
	return write(catalog.FromTemplate(name, tmpl), output)
}

func write(def catalog.Definition, output string) error {
	data, err := yaml.Marshal(def)
	if err != nil {
		return fmt.Errorf("marshal template: %w", err)
	}
	if output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Template written to %s\n", output)
	return nil
}
