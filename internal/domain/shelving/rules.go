package shelving

import "github.com/phrazzld/kdc-shelver/internal/domain"

// Example is a worked pair for a rule. Before always shelves ahead of After.
type Example struct {
	Title  string
	Note   string
	Before domain.CallNumber
	After  domain.CallNumber
}

// Rule is one shelving stage as taught to a reader.
type Rule struct {
	Stage       Stage
	Title       string
	Explanation string
	Examples    []Example
}

// Rules returns the rule catalogue, one entry per stage.
func Rules() []Rule {
	return []Rule{
		{
			Stage: StageClass,
			Title: "분류 기호 (십진법 순서)",
			Explanation: "책의 주제를 나타내는 번호입니다. 숫자의 크기대로 정렬하며, " +
				"소수점 이하는 자릿수별로 비교합니다. (예: 0.1은 0.01보다 큼)",
			Examples: []Example{
				{
					Title:  "530.5 vs 530.49",
					Note:   "530.49는 530.50보다 작으므로 530.49가 먼저 옵니다.",
					Before: domain.CallNumber{Class: "530.49"},
					After:  domain.CallNumber{Class: "530.5"},
				},
				{
					Title:  "813.1 vs 813.01",
					Note:   "0.01은 0.1보다 작으므로 813.01이 먼저 옵니다.",
					Before: domain.CallNumber{Class: "813.01"},
					After:  domain.CallNumber{Class: "813.1"},
				},
			},
		},
		{
			Stage: StageAuthor,
			Title: "저자 기호 (한글 → 숫자 → 기호)",
			Explanation: "분류 기호가 같으면 저자 기호로 정렬합니다. " +
				"순서: 1) 한글(가나다순) → 2) 숫자(작은 수 우선) → 3) 저작 기호(가나다순).",
			Examples: []Example{
				{
					Title:  "가294 vs 각294",
					Note:   "받침이 없는 '가'가 받침이 있는 '각'보다 먼저 옵니다.",
					Before: domain.CallNumber{Author: "가294"},
					After:  domain.CallNumber{Author: "각294"},
				},
				{
					Title:  "김099 vs 김100",
					Note:   "99가 100보다 작으므로 김099가 먼저 옵니다.",
					Before: domain.CallNumber{Author: "김099"},
					After:  domain.CallNumber{Author: "김100"},
				},
				{
					Title:  "동6가 vs 동61ㄱ",
					Note:   "숫자 6이 61보다 작으므로 동6가가 먼저 옵니다.",
					Before: domain.CallNumber{Author: "동6가"},
					After:  domain.CallNumber{Author: "동61ㄱ"},
				},
			},
		},
		{
			Stage: StageVolume,
			Title: "권차 및 복본 (시리즈 우선)",
			Explanation: "저자 기호까지 같다면: 1) 권차(v.)가 복본(c.)보다 먼저 오며, " +
				"2) 그 다음 숫자가 작은 순서대로 정렬합니다.",
			Examples: []Example{
				{
					Title:  "v.1 vs v.2",
					Note:   "1권이 2권보다 먼저 옵니다.",
					Before: domain.CallNumber{Vol: "v.1"},
					After:  domain.CallNumber{Vol: "v.2"},
				},
				{
					Title:  "v.1 vs c.1",
					Note:   "보통 권차(v.)가 복본(c.)보다 우선합니다.",
					Before: domain.CallNumber{Vol: "v.1"},
					After:  domain.CallNumber{Vol: "c.1"},
				},
			},
		},
	}
}
