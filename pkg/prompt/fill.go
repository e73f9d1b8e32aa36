package prompt

import (
	"context"
	"strings"

	"github.com/goliatone/go-doctmpl/pkg/template"
)

// PickTemplate asks the user to choose one of the registered template names.
func PickTemplate(ctx context.Context, driver Driver, names []string) (string, error) {
	idx, err := driver.Select(ctx, SelectConfig{
		Message: "Template to instantiate:",
		Options: names,
	})
	if err != nil {
		return "", err
	}
	return names[idx], nil
}

// FillMetadata repeatedly asks for key/value pairs and writes them onto the
// clone until the user submits an empty key. The clone is caller-owned, so
// writing here can never touch a registered master.
func FillMetadata(ctx context.Context, driver Driver, tmpl *template.DocumentTemplate) error {
	for {
		key, err := driver.Input(ctx, InputConfig{
			Message: "Metadata key (empty to finish):",
		})
		if err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil
		}

		value, err := driver.Input(ctx, InputConfig{
			Message: "Value for " + key + ":",
			Default: tmpl.Metadata[key],
		})
		if err != nil {
			return err
		}
		tmpl.SetMetadata(key, value)
	}
}
