package shape

// Encoder names the output format recommendation table points to. These
// match the format tags used by the format registry and pipeline.
type Encoder string

const (
	EncoderTSV  Encoder = "tsv"
	EncoderTOON Encoder = "toon"
	EncoderYAML Encoder = "yaml"
	EncoderJSON Encoder = "json"
)

// Recommend maps a Report to the encoder predicted to produce the
// fewest tokens, per §4.4's recommendation table.
func Recommend(r Report) Encoder {
	switch r.Tag {
	case UniformArray:
		if r.AllPrimitive {
			return EncoderTSV
		}
		return EncoderTOON
	case TabularData:
		return EncoderTSV
	case SparseArray:
		return EncoderTOON
	case FlatObject:
		return EncoderYAML
	case NestedObject:
		if r.MaxDepth <= 2 {
			return EncoderYAML
		}
		return EncoderJSON
	case Primitive, Empty, Mixed:
		return EncoderJSON
	default:
		return EncoderJSON
	}
}
