package recommendation

import "strings"

var domainKeywords = struct {
	culinary, visualArts, music, history, nature, traditions []string
}{
	culinary:   []string{"culinary", "food", "cuisine", "dining"},
	visualArts: []string{"art", "museum", "gallery", "visual"},
	music:      []string{"music", "concert", "performance"},
	history:    []string{"history", "historical", "ancient", "heritage"},
	nature:     []string{"nature", "outdoor", "adventure", "hiking"},
	traditions: []string{"tradition", "culture", "festival", "ceremony"},
}

// AnalyzePreferences buckets each token into every domain whose keyword it contains.
func AnalyzePreferences(preferences []string) Profile {
	domains := make([]string, 0, len(preferences))
	for _, pref := range preferences {
		if clean := strings.TrimSpace(pref); clean != "" {
			domains = append(domains, clean)
		}
	}
	return Profile{
		CulturalDomains: domains,
		Preferences: ProfileByDomains{
			Culinary:   bucket(domains, domainKeywords.culinary),
			VisualArts: bucket(domains, domainKeywords.visualArts),
			Music:      bucket(domains, domainKeywords.music),
			History:    bucket(domains, domainKeywords.history),
			Nature:     bucket(domains, domainKeywords.nature),
			Traditions: bucket(domains, domainKeywords.traditions),
		},
	}
}

func bucket(preferences, keywords []string) []string {
	out := make([]string, 0)
	for _, pref := range preferences {
		lower := strings.ToLower(pref)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				out = append(out, pref)
				break
			}
		}
	}
	return out
}
