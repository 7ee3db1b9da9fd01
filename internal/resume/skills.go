package resume

import "strings"

// knownSkills is the keyword list matched against resume text. Matching is a
// case-insensitive containment check, nothing smarter.
var knownSkills = []string{
	"JavaScript", "React", "Node.js", "Python", "Java",
	"C++", "HTML", "CSS", "SQL", "MongoDB", "AWS",
}

// Skills returns every known skill the text mentions, in list order.
func Skills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(knownSkills))
	for _, skill := range knownSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// Missing returns the required skills the candidate does not have, comparing
// case-insensitively after trimming. Blank requirements are skipped.
func Missing(required, have []string) []string {
	norm := make(map[string]struct{}, len(have))
	for _, s := range have {
		norm[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	var missing []string
	for _, req := range required {
		trimmed := strings.TrimSpace(req)
		if trimmed == "" {
			continue
		}
		if _, ok := norm[strings.ToLower(trimmed)]; !ok {
			missing = append(missing, req)
		}
	}
	return missing
}
