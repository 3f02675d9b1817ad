package permissions

var base = Policy{
	IndexRules: map[string][]Rule{
		"_default": {
			{
				Access:        Allow,
				Fields:        StringSet{"name"},
				SourceFilters: StringSet{"directed_by"},
			},
		},
		"locations": {
			{
				Access:        Allow,
				Fields:        StringSet{"about", "description", "name"},
				SourceFilters: StringSet{"directed_by"},
				Roles:         StringSet{"GUITAR", "DRUMMER"},
			},
		},
	},
}

var users = Roster{
	{Username: "ringo", Roles: StringSet{"DRUMMER"}},
	{Username: "george", Roles: StringSet{"GUITAR", "VOCALS"}},
	{Username: "john", Roles: StringSet{"GUITAR", "VOCALS"}},
	{Username: "paul", Roles: StringSet{"BASS", "VOCALS"}},
}

// Base returns the index permissions policy. Every call returns a fresh copy.
func Base() Policy {
	return base.clone()
}

// Users returns the sample user roster. Every call returns a fresh copy.
func Users() Roster {
	return users.clone()
}
