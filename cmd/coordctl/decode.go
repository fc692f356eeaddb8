package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/coordctl/internal/catalog"
	"github.com/danmuck/coordctl/internal/config"
	"github.com/danmuck/coordctl/internal/econ"
)

// runDecode inspects a captured coordinator payload offline: the same
// extractors the session flows use, pointed at a file.
func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	configPath := fs.String("config", "coordctl.toml", "client config file")
	mode := fs.String("mode", "item", "what to extract: item, balance or defindex")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: coordctl decode [flags] <payload-file>")
	}

	buf, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	var cat catalog.Catalog
	if cfg, err := config.Load(*configPath); err == nil && cfg.CatalogPath != "" {
		if loaded, err := catalog.LoadFile(cfg.CatalogPath); err == nil {
			cat = loaded
		}
	}

	switch *mode {
	case "item":
		item, ok := econ.FindItem(buf)
		if !ok {
			fmt.Println("no economy item found")
			return nil
		}
		fmt.Printf("item def_index=%d%s\n", item.DefIndex, displayName(cat, item.DefIndex))
		for _, attr := range item.Attributes {
			fmt.Printf("  attribute def_index=%d value=%s\n", attr.DefIndex, attr.ValueHex)
		}
		return nil
	case "balance":
		bal, ok := econ.FindBalanceInCache(buf)
		if !ok {
			fmt.Println("no balance found")
			return nil
		}
		fmt.Printf("balance=%d\n", bal)
		return nil
	case "defindex":
		idx, ok := econ.FindDefIndexDeep(buf)
		if !ok {
			fmt.Println("no definition index found")
			return nil
		}
		fmt.Printf("def_index=%d%s\n", idx, displayName(cat, idx))
		return nil
	default:
		return fmt.Errorf("unknown decode mode %q", *mode)
	}
}

func displayName(cat catalog.Catalog, defIndex int) string {
	if cat == nil {
		return ""
	}
	entry, ok := cat.Lookup(defIndex)
	if !ok {
		return ""
	}
	return fmt.Sprintf(" (%s)", entry.Name)
}
