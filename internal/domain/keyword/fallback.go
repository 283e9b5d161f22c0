package keyword

import "strings"

// Bounds for a generated keyword list.
const (
	MinKeywords = 3
	MaxKeywords = 5
)

// fallbackByGenre maps a genre (case-sensitive exact match) to a fixed set of
// discussion keywords, used whenever text generation is unavailable or fails.
var fallbackByGenre = map[string][]string{
	"소설":   {"인물의 선택", "삶의 전환점", "관계의 의미", "내면의 갈등", "자유와 책임"},
	"에세이":  {"일상의 발견", "공감의 순간", "작가의 시선", "나의 경험", "위로와 성찰"},
	"자기계발": {"습관의 힘", "실천 가능한 변화", "성장의 계기", "목표 설정", "동기 부여"},
	"인문학":  {"시대의 흐름", "인간의 본질", "질문하는 태도", "지식의 연결", "오늘의 교훈"},
	"과학":   {"호기심의 출발", "일상 속 과학", "미래의 변화", "탐구의 즐거움", "사실과 해석"},
}

// defaultSet covers genres without a dedicated entry.
var defaultSet = []string{"인상 깊은 장면", "공감되는 인물", "나와의 연결", "함께 나눌 질문", "책이 남긴 것"}

// Fallback returns the static keyword set for a genre.
// POST: Returns a non-empty list of exactly 5 keywords; the caller owns the slice
func Fallback(genre string) []string {
	set, ok := fallbackByGenre[genre]
	if !ok {
		set = defaultSet
	}
	out := make([]string, len(set))
	copy(out, set)
	return out
}

// ParseLine splits a comma-separated keyword line from the text-generation
// service into at most MaxKeywords trimmed, non-empty keywords.
// POST: len(result) <= MaxKeywords; no element is empty or padded
func ParseLine(line string) []string {
	var out []string
	for _, part := range strings.Split(line, ",") {
		kw := strings.TrimSpace(part)
		if kw == "" {
			continue
		}
		out = append(out, kw)
		if len(out) == MaxKeywords {
			break
		}
	}
	return out
}
