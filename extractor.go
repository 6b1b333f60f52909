package clipnote

import "context"

// ArticleExtractor is one tier of the article extraction strategy
// chain. Tiers are attempted in order: a tier failing (or producing
// too little content) hands the URL to the next one.
type ArticleExtractor interface {
	// Extract fetches the page and returns its content as markdown
	// with an optional prepared HTML mirror.
	// Returns ENOTFOUND when no content container could be located,
	// and ETOOSHORT when the extracted text is below the minimum
	// length for a trustworthy extraction.
	Extract(ctx context.Context, url string) (*Article, error)
}
