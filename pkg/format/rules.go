package format

// Rule names a single formatting pass that can be applied on its own.
type Rule string

const (
	RuleSpacing    Rule = "spacing"
	RuleHeaders    Rule = "headers"
	RuleLists      Rule = "lists"
	RuleQuotes     Rule = "quotes"
	RuleCode       Rule = "code"
	RuleTables     Rule = "tables"
	RuleFormatting Rule = "formatting"
)

//nolint:gochecknoglobals // Read-only lookup table.
var rules = map[Rule]func(string) string{
	RuleSpacing:    FixParagraphSpacing,
	RuleHeaders:    NormalizeHeader,
	RuleLists:      NormalizeList,
	RuleQuotes:     NormalizeQuote,
	RuleCode:       NormalizeCode,
	RuleTables:     NormalizeTable,
	RuleFormatting: FixTextFormatting,
}

// Rules returns every rule in pipeline order.
func Rules() []Rule {
	return []Rule{RuleSpacing, RuleHeaders, RuleLists, RuleQuotes, RuleCode, RuleTables, RuleFormatting}
}

// ParseRule resolves a rule name.
func ParseRule(name string) (Rule, bool) {
	r := Rule(name)
	_, ok := rules[r]
	return r, ok
}

// ApplyRule applies one rule to text as a whole, without kind detection.
// Unknown rules return text unchanged.
func ApplyRule(text string, rule Rule) string {
	fn, ok := rules[rule]
	if !ok {
		return text
	}
	return fn(text)
}
