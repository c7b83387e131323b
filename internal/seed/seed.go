// Package seed provides the activity roster loaded into the registry at
// process start.
package seed

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	registry "github.com/mergington/activities/internal/adapters/registry"
	"github.com/mergington/activities/internal/domain/model"
)

// Default returns the built-in school roster in its canonical order.
func Default() []registry.Entry {
	return []registry.Entry{
		{Name: "Chess Club", Activity: model.Activity{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}},
		{Name: "Programming Class", Activity: model.Activity{
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		}},
		{Name: "Gym Class", Activity: model.Activity{
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		}},
		{Name: "Soccer Team", Activity: model.Activity{
			Description:     "Join the school soccer team and compete against other schools",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "sarah@mergington.edu"},
		}},
		{Name: "Swimming Club", Activity: model.Activity{
			Description:     "Improve your swimming skills and participate in swim meets",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"james@mergington.edu", "lily@mergington.edu"},
		}},
		{Name: "Drama Club", Activity: model.Activity{
			Description:     "Perform in school plays and develop acting skills",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"emily@mergington.edu", "noah@mergington.edu"},
		}},
		{Name: "Art Studio", Activity: model.Activity{
			Description:     "Explore various art mediums including painting, drawing, and sculpture",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "liam@mergington.edu"},
		}},
		{Name: "Debate Team", Activity: model.Activity{
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ethan@mergington.edu", "mia@mergington.edu"},
		}},
		{Name: "Science Olympiad", Activity: model.Activity{
			Description:     "Compete in science competitions and conduct experiments",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"william@mergington.edu", "isabella@mergington.edu"},
		}},
	}
}

// rosterActivity mirrors one entry of a YAML roster file. A list rather than
// a map keeps the registry's insertion order under our control.
type rosterActivity struct {
	Name            string   `koanf:"name"`
	Description     string   `koanf:"description"`
	Schedule        string   `koanf:"schedule"`
	MaxParticipants int      `koanf:"max_participants"`
	Participants    []string `koanf:"participants"`
}

type rosterFile struct {
	Activities []rosterActivity `koanf:"activities"`
}

// FromFile loads a roster from a YAML file, replacing the default seed.
// Every entry is validated; a bad file fails startup rather than serving a
// half-seeded registry.
func FromFile(path string) ([]registry.Entry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load roster file: %w", err)
	}

	var roster rosterFile
	if err := k.UnmarshalWithConf("", &roster, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}
	if len(roster.Activities) == 0 {
		return nil, fmt.Errorf("roster file %s defines no activities", path)
	}

	seen := make(map[string]struct{}, len(roster.Activities))
	entries := make([]registry.Entry, 0, len(roster.Activities))
	for _, ra := range roster.Activities {
		if ra.Name == "" {
			return nil, fmt.Errorf("roster file %s: activity with empty name", path)
		}
		if _, ok := seen[ra.Name]; ok {
			return nil, fmt.Errorf("roster file %s: %w: %s", path, registry.ErrDuplicateActivity, ra.Name)
		}
		seen[ra.Name] = struct{}{}

		activity := model.Activity{
			Description:     ra.Description,
			Schedule:        ra.Schedule,
			MaxParticipants: ra.MaxParticipants,
			Participants:    append([]string{}, ra.Participants...),
		}
		if err := activity.Validate(); err != nil {
			return nil, fmt.Errorf("roster file %s: activity %q: %w", path, ra.Name, err)
		}
		entries = append(entries, registry.Entry{Name: ra.Name, Activity: activity})
	}
	return entries, nil
}
