package domain

// Role is a team position name recognized on the bulletin.
type Role string

const (
	RolePreacher          Role = "Preacher"
	RoleServiceLeader     Role = "Service Leader"
	RolePastoralPrayer    Role = "Pastoral Prayer"
	RoleScriptureReader   Role = "Scripture Reader"
	RoleConfessionOfFaith Role = "Confession of Faith"
	RoleCatechism         Role = "Catechism"
	RoleConfessionOfSin   Role = "Confession of Sin & Assurance of Pardon"
	RoleLordsSupperLeader Role = "Lord's Supper Leader"
)

var roleOrder = [...]Role{
	RolePreacher,
	RoleServiceLeader,
	RolePastoralPrayer,
	RoleScriptureReader,
	RoleConfessionOfFaith,
	RoleCatechism,
	RoleConfessionOfSin,
	RoleLordsSupperLeader,
}

// Roles returns the recognized roles in bulletin order. The returned slice
// is a copy.
func Roles() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder[:])
	return out
}

// ParseRole matches a remote team position name against the taxonomy.
// Matching is exact; positions outside the taxonomy report false.
func ParseRole(positionName string) (Role, bool) {
	for _, r := range roleOrder {
		if string(r) == positionName {
			return r, true
		}
	}
	return "", false
}

// NameTitles maps a person's plain name to the honorific shown next to it.
type NameTitles map[string]string

// Display renders name with its title appended, e.g. "Jane Doe (Elder)".
// Names without an override are returned unchanged. Any entry counts as an
// override, even one with a blank title.
func (t NameTitles) Display(name string) string {
	if title, ok := t[name]; ok {
		return name + " (" + title + ")"
	}
	return name
}

// Merge returns a new table with other's entries layered over t.
func (t NameTitles) Merge(other NameTitles) NameTitles {
	out := make(NameTitles, len(t)+len(other))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
