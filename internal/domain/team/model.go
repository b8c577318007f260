package team

import "fmt"

// Team is a club as listed in one season's catalogue.
type Team struct {
	ID        string
	Name      string
	President string
	Director  string
	Coach     string
	LogoPath  string
	Season    int
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Names returns team names in input order, skipping blanks and repeats.
func Names(teams []Team) []string {
	seen := make(map[string]struct{}, len(teams))
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		if t.Name == "" {
			continue
		}
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		out = append(out, t.Name)
	}
	return out
}
