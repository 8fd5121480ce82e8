// Package pipeline orchestrates the resume rewrite flow: format detection,
// fact extraction, keyword categorization, Generator calls, frequency
// enforcement with a single reinforcement pass, and hallucination-guard
// validation.
package pipeline

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/sanaai/job-assistant/internal/budget"
	"github.com/sanaai/job-assistant/internal/cache"
	"github.com/sanaai/job-assistant/internal/keywords"
	"github.com/sanaai/job-assistant/internal/latex"
	"github.com/sanaai/job-assistant/internal/llm"
	"github.com/sanaai/job-assistant/internal/prompts"
	"github.com/sanaai/job-assistant/internal/types"
	"github.com/sanaai/job-assistant/internal/validation"
)

// Frequency policy applied to Generator output.
const (
	// MinCoreOccurrences is the required count for core keywords.
	MinCoreOccurrences = 5
	// MinToolOccurrences is the required count for tool keywords.
	MinToolOccurrences = 3

	// reinforceThreshold triggers the reinforcement pass only when more
	// than this fraction of core keywords is under-represented.
	reinforceThreshold = 0.30
	// maxReinforceKeywords bounds how many missing keywords the
	// reinforcement prompt names.
	maxReinforceKeywords = 8
	// minReplacementRatio rejects reinforcement output shorter than this
	// fraction of the prior candidate, a safeguard against a degenerate
	// short response overwriting a good one.
	minReplacementRatio = 0.80

	// DefaultMaxPromptChars bounds resume text sent to the Generator.
	DefaultMaxPromptChars = 24000
)

// FactExtractor derives a FactSet from plain text.
type FactExtractor interface {
	Extract(text string) *types.FactSet
}

// Rewriter runs the rewrite pipeline. The cache store is the only shared
// mutable state; everything else is pure computation plus Generator calls.
type Rewriter struct {
	client         llm.Client
	store          *cache.Store
	extractor      FactExtractor
	guard          *validation.Guard
	maxPromptChars int
}

// NewRewriter creates a Rewriter. maxPromptChars bounds Generator input;
// non-positive values use DefaultMaxPromptChars.
func NewRewriter(client llm.Client, store *cache.Store, extractor FactExtractor, maxPromptChars int) *Rewriter {
	if maxPromptChars <= 0 {
		maxPromptChars = DefaultMaxPromptChars
	}
	return &Rewriter{
		client:         client,
		store:          store,
		extractor:      extractor,
		guard:          validation.NewGuard(extractor),
		maxPromptChars: maxPromptChars,
	}
}

// Result carries the rewritten resume and its validation diagnostics.
type Result struct {
	Rewritten  string                  `json:"rewritten_resume"`
	Format     types.Format            `json:"resume_format"`
	Bucket     *types.KeywordBucket    `json:"keywords"`
	Report     *types.ValidationReport `json:"validation"`
	Shortfalls []keywords.Shortfall    `json:"under_represented,omitempty"`
	Reinforced bool                    `json:"reinforced"`
	Facts      *types.FactSet          `json:"-"`
	CacheHit   bool                    `json:"-"`
}

// Rewrite tailors a resume to a job posting. The validation report is
// advisory: a failed report is returned alongside the rewritten text, not
// as an error.
func (r *Rewriter) Rewrite(ctx context.Context, resume, posting string) (*Result, error) {
	format := latex.DetectFormat(resume)

	var entry *types.CacheEntry
	var bucket *types.KeywordBucket
	var cacheHit bool

	// Fact extraction and keyword categorization are independent pure
	// computations over different inputs.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		entry, cacheHit = r.documentFacts(resume, format)
		return nil
	})
	g.Go(func() error {
		bucket = keywords.Categorize(posting)
		return nil
	})
	_ = g.Wait()

	candidate, err := r.generateRewrite(ctx, resume, format, bucket)
	if err != nil {
		return nil, err
	}

	candidate, shortfalls, reinforced := r.enforceKeywords(ctx, candidate, bucket)

	report := r.guard.Validate(entry.Facts, r.plainText(candidate, format))

	return &Result{
		Rewritten:  candidate,
		Format:     format,
		Bucket:     bucket,
		Report:     report,
		Shortfalls: shortfalls,
		Reinforced: reinforced,
		Facts:      entry.Facts,
		CacheHit:   cacheHit,
	}, nil
}

// documentFacts returns the cached facts for a document, extracting and
// caching them on a miss.
func (r *Rewriter) documentFacts(resume string, format types.Format) (*types.CacheEntry, bool) {
	fingerprint := cache.Fingerprint(resume)
	if entry, ok := r.store.Get(fingerprint); ok {
		return entry, true
	}

	normalized := r.plainText(resume, format)
	entry := &types.CacheEntry{
		Fingerprint:    fingerprint,
		NormalizedText: normalized,
		Facts:          r.extractor.Extract(normalized),
	}
	r.store.Put(entry)
	return entry, false
}

// plainText returns the comparable plain-text form of a document.
func (r *Rewriter) plainText(text string, format types.Format) string {
	if format == types.FormatLaTeX {
		return latex.StripToText(text)
	}
	return text
}

// generateRewrite issues the primary Generator call.
func (r *Rewriter) generateRewrite(ctx context.Context, resume string, format types.Format, bucket *types.KeywordBucket) (string, error) {
	promptKey, systemKey := "rewrite-text", "rewrite-text-system"
	if format == types.FormatLaTeX {
		promptKey, systemKey = "rewrite-latex", "rewrite-latex-system"
	}

	prompt := prompts.Format(prompts.MustGet("rewrite.json", promptKey), map[string]string{
		"CoreKeywords":      strings.Join(bucket.Core, ", "),
		"ToolKeywords":      strings.Join(bucket.Tools, ", "),
		"SecondaryKeywords": strings.Join(bucket.Secondary, ", "),
		"Resume":            budget.Truncate(resume, r.maxPromptChars),
	})

	return r.client.Complete(ctx, prompt, prompts.MustGet("rewrite.json", systemKey), llm.TierAdvanced)
}

// enforceKeywords measures keyword shortfalls and issues at most one
// reinforcement pass. The pass is content-driven, not failure-driven: it
// runs only when too many core keywords are under-represented, and any
// failure falls back silently to the pre-reinforcement candidate.
func (r *Rewriter) enforceKeywords(ctx context.Context, candidate string, bucket *types.KeywordBucket) (string, []keywords.Shortfall, bool) {
	coreShortfalls := keywords.EnforceMinimums(candidate, bucket.Core, MinCoreOccurrences)
	toolShortfalls := keywords.EnforceMinimums(candidate, bucket.Tools, MinToolOccurrences)
	shortfalls := append(coreShortfalls, toolShortfalls...)

	if len(bucket.Core) == 0 {
		return candidate, shortfalls, false
	}
	missingRatio := float64(len(coreShortfalls)) / float64(len(bucket.Core))
	if missingRatio <= reinforceThreshold {
		return candidate, shortfalls, false
	}

	log.Printf("reinforcement pass: %d/%d core keywords under-represented", len(coreShortfalls), len(bucket.Core))

	reinforced, err := r.reinforce(ctx, candidate, shortfalls)
	if err != nil {
		log.Printf("reinforcement pass failed, keeping prior candidate: %v", err)
		return candidate, shortfalls, false
	}
	if float64(len(reinforced)) < minReplacementRatio*float64(len(candidate)) {
		log.Printf("reinforcement output too short (%d < 80%% of %d), keeping prior candidate", len(reinforced), len(candidate))
		return candidate, shortfalls, false
	}

	// Re-measure against the accepted replacement.
	shortfalls = append(
		keywords.EnforceMinimums(reinforced, bucket.Core, MinCoreOccurrences),
		keywords.EnforceMinimums(reinforced, bucket.Tools, MinToolOccurrences)...)
	return reinforced, shortfalls, true
}

// reinforce issues the narrower second Generator call naming only the most
// significant missing keywords and a bounded prefix of the candidate.
func (r *Rewriter) reinforce(ctx context.Context, candidate string, shortfalls []keywords.Shortfall) (string, error) {
	named := shortfalls
	if len(named) > maxReinforceKeywords {
		named = named[:maxReinforceKeywords]
	}

	prefix := candidate
	if len(prefix) > r.maxPromptChars {
		cut := r.maxPromptChars
		for cut > 0 && !utf8.RuneStart(prefix[cut]) {
			cut--
		}
		prefix = prefix[:cut]
	}

	prompt := prompts.Format(prompts.MustGet("rewrite.json", "reinforce"), map[string]string{
		"MissingKeywords": strings.Join(keywords.ShortfallStrings(named), "\n"),
		"Resume":          prefix,
	})

	return r.client.Complete(ctx, prompt, prompts.MustGet("rewrite.json", "reinforce-system"), llm.TierAdvanced)
}
