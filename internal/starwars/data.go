package starwars

// character is the data shared by every person or droid in the catalog.
type character struct {
	id        string
	name      string
	friends   []string
	appearsIn []string
}

type human struct {
	character
	homePlanet string
}

type droid struct {
	character
	primaryFunction string
}

var humans = map[string]*human{
	"1000": {
		character: character{
			id:        "1000",
			name:      "Luke Skywalker",
			friends:   []string{"2000", "2001"},
			appearsIn: []string{"NEWHOPE", "EMPIRE", "JEDI"},
		},
		homePlanet: "Tatooine",
	},
	"1001": {
		character: character{
			id:        "1001",
			name:      "Darth Vader",
			friends:   []string{"2000"},
			appearsIn: []string{"NEWHOPE", "EMPIRE", "JEDI"},
		},
		homePlanet: "Tatooine",
	},
}

var droids = map[string]*droid{
	"2000": {
		character: character{
			id:        "2000",
			name:      "C-3PO",
			friends:   []string{"1000", "2001"},
			appearsIn: []string{"NEWHOPE", "EMPIRE", "JEDI"},
		},
		primaryFunction: "Protocol",
	},
	"2001": {
		character: character{
			id:        "2001",
			name:      "R2-D2",
			friends:   []string{"1000", "2000"},
			appearsIn: []string{"NEWHOPE", "EMPIRE", "JEDI"},
		},
		primaryFunction: "Astromech",
	},
}

func findHuman(id string) *human { return humans[id] }
func findDroid(id string) *droid { return droids[id] }
