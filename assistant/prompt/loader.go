// Package prompt renders the system prompt sent to the agent service.
package prompt

import (
	_ "embed"
	"strconv"
	"strings"

	catalogx "github.com/napatw/shopmind/catalog"
)

//go:embed template/system.txt
var systemRaw string

// maxPromptProducts caps the catalog listing embedded in the system
// prompt. The first products in catalog order win.
const maxPromptProducts = 10

const productsPlaceholder = "{{products}}"

// System renders the shopping-assistant system prompt with a listing of
// the first products in catalog order.
func System(products []catalogx.Product) string {
	tpl := strings.TrimSpace(systemRaw)
	return strings.ReplaceAll(tpl, productsPlaceholder, productListing(products))
}

func productListing(products []catalogx.Product) string {
	if len(products) > maxPromptProducts {
		products = products[:maxPromptProducts]
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, ProductLine(p))
	}
	return strings.Join(lines, "\n")
}

// ProductLine formats one catalog entry for the prompt, e.g.
// "- iPhone 15 Pro ($999) - Latest iPhone with Pro camera system".
func ProductLine(p catalogx.Product) string {
	price := strconv.FormatFloat(p.Price, 'f', -1, 64)
	return "- " + p.Name + " ($" + price + ") - " + p.Description
}
