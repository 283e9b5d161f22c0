package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bookclub/internal/domain/book"
	"bookclub/internal/domain/keyword"
)

// Validation errors surfaced to the web façade as 400s.
var (
	ErrMissingTitle = errors.New("title cannot be empty")
	ErrMissingGenre = errors.New("genre cannot be empty")
)

// descriptionLimit caps how much catalog description goes into the prompt.
const descriptionLimit = 500

// systemPrompt fixes the generator's persona.
const systemPrompt = "당신은 독서모임 진행자입니다. 참가자들이 책의 주제와 각자의 경험을 연결해 깊이 있는 대화를 나눌 수 있도록 돕습니다."

// instructionBlock is appended to every prompt.
const instructionBlock = "토론 키워드를 3~5개 제안해 주세요. 각 키워드는 2~4 단어로, 책의 주제와 개인 경험을 연결해 모임에서 이야기를 이끌어낼 수 있어야 합니다. 다른 설명 없이 쉼표로 구분된 한 줄로만 답해 주세요."

// MetadataLookup queries the external catalog. Absent metadata is not an error.
type MetadataLookup interface {
	Lookup(ctx context.Context, title, author string) (book.Metadata, bool)
}

// TextGenerator produces free text from a system + user prompt pair.
type TextGenerator interface {
	Configured() bool
	Complete(ctx context.Context, system, user string) (string, error)
}

// GenerateKeywordsInput carries the book fields to generate keywords for.
type GenerateKeywordsInput struct {
	Title  string
	Author string
	Genre  string
	Review string
}

// GenerateKeywordsDeps holds dependencies for GenerateKeywords.
type GenerateKeywordsDeps struct {
	Lookup    MetadataLookup
	Generator TextGenerator
}

// ExecuteGenerateKeywords produces 3–5 discussion keywords for a book.
// Beyond input validation this never fails: any lookup, generation, or
// parsing problem falls back to the static genre-keyed table.
// POST: Returns a non-empty keyword list, or a validation error
func ExecuteGenerateKeywords(ctx context.Context, input GenerateKeywordsInput, deps GenerateKeywordsDeps) ([]string, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Genre = strings.TrimSpace(input.Genre)
	if input.Title == "" {
		return nil, ErrMissingTitle
	}
	if input.Genre == "" {
		return nil, ErrMissingGenre
	}

	if deps.Generator == nil || !deps.Generator.Configured() {
		return keyword.Fallback(input.Genre), nil
	}

	var meta book.Metadata
	var found bool
	if deps.Lookup != nil {
		meta, found = deps.Lookup.Lookup(ctx, input.Title, input.Author)
	}

	line, err := deps.Generator.Complete(ctx, systemPrompt, buildPrompt(input, meta, found))
	if err != nil {
		slog.Warn("keyword_generation_failed", "error", err, "title", input.Title)
		return keyword.Fallback(input.Genre), nil
	}

	keywords := keyword.ParseLine(line)
	if len(keywords) < keyword.MinKeywords {
		slog.Warn("keyword_generation_short", "got", len(keywords), "title", input.Title)
		return keyword.Fallback(input.Genre), nil
	}
	return keywords, nil
}

// buildPrompt assembles the generation prompt. The enriched and baseline
// branches are explicit; both end with the fixed instruction block.
func buildPrompt(input GenerateKeywordsInput, meta book.Metadata, found bool) string {
	var b strings.Builder
	if found {
		b.WriteString("다음 책을 읽은 모임을 위한 토론 키워드가 필요합니다.\n\n")
		b.WriteString("제목: " + meta.Title + "\n")
		if len(meta.Authors) > 0 {
			b.WriteString("저자: " + strings.Join(meta.Authors, ", ") + "\n")
		}
		b.WriteString("장르: " + input.Genre + "\n")
		if meta.Description != "" {
			b.WriteString("소개: " + truncate(meta.Description, descriptionLimit) + "\n")
		}
		if len(meta.Categories) > 0 {
			b.WriteString("분류: " + strings.Join(meta.Categories, ", ") + "\n")
		}
	} else {
		b.WriteString("장르가 '" + input.Genre + "'인 책 「" + input.Title + "」을 읽은 모임을 위한 토론 키워드가 필요합니다.\n")
	}
	if strings.TrimSpace(input.Review) != "" {
		b.WriteString("독자 한줄평: " + input.Review + "\n")
	}
	b.WriteString("\n" + instructionBlock)
	return b.String()
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
