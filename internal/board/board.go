// Package board defines the representation of a development board and
// the mapping from board database entries, online and offline, into it.
package board

// Board is a single development board as known to the board database.
//
// BoardType doubles as the target name in the build target catalog
// (targets.json); Slug together with TargetType identifies the board's
// page in the online database.
type Board struct {
	BoardType    string   `json:"board_type"`
	BoardName    string   `json:"board_name"`
	ProductCode  string   `json:"product_code"`
	TargetType   string   `json:"target_type"`
	Slug         string   `json:"slug"`
	OSSupport    []string `json:"os_support"`
	Enabled      []string `json:"enabled"`
	BuildVariant []string `json:"build_variant"`
}

// OnlineEntry is the shape of a single board entity as returned by the
// online database API, with the board's fields nested under "attributes"
// and its feature lists nested one level further down.
type OnlineEntry struct {
	Attributes struct {
		BoardType   string `json:"board_type"`
		Name        string `json:"name"`
		ProductCode string `json:"product_code"`
		TargetType  string `json:"target_type"`
		Slug        string `json:"slug"`
		Features    struct {
			OSSupport []string `json:"os_support"`
			Enabled   []string `json:"enabled"`
		} `json:"features"`
		BuildVariant []string `json:"build_variant"`
	} `json:"attributes"`
}

// FromOnlineEntry flattens an online database entity into a Board.
// Missing fields default to their zero values, matching the API's habit
// of omitting attributes it has no data for.
func FromOnlineEntry(entry OnlineEntry) Board {
	attrs := entry.Attributes
	return Board{
		BoardType:    attrs.BoardType,
		BoardName:    attrs.Name,
		ProductCode:  attrs.ProductCode,
		TargetType:   attrs.TargetType,
		Slug:         attrs.Slug,
		OSSupport:    attrs.Features.OSSupport,
		Enabled:      attrs.Features.Enabled,
		BuildVariant: attrs.BuildVariant,
	}
}
