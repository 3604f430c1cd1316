package pipeline

// Importing these packages for their init()-time format.Register calls
// is what makes every format available through the pipeline without
// every caller needing to remember the full import list.
import (
	_ "github.com/GeoffMall/toon/internal/format/avro"
	_ "github.com/GeoffMall/toon/internal/format/csv"
	_ "github.com/GeoffMall/toon/internal/format/json"
	_ "github.com/GeoffMall/toon/internal/format/parquet"
	_ "github.com/GeoffMall/toon/internal/format/toon"
	_ "github.com/GeoffMall/toon/internal/format/tsv"
	_ "github.com/GeoffMall/toon/internal/format/xml"
	_ "github.com/GeoffMall/toon/internal/format/yaml"
)
