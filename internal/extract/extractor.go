package extract

// Extractor narrows markup parsing to a single capability so the ranker can
// be exercised with fakes and the HTML library swapped without touching it.
type Extractor interface {
	// Extract converts raw HTML bytes into a Document. Implementations must
	// be deterministic and side-effect free.
	Extract(raw []byte) Document
}

// HTMLExtractor is the default Extractor backed by FromHTML.
type HTMLExtractor struct{}

func (HTMLExtractor) Extract(raw []byte) Document {
	return FromHTML(raw)
}
