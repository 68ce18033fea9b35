package domain

import "strings"

// IconKind is the closed set of icons the site can draw.
type IconKind string

const (
	IconHeart    IconKind = "heart"
	IconBuilding IconKind = "building"
	IconUsers    IconKind = "users"
	IconDiamond  IconKind = "diamond"
	IconCrown    IconKind = "crown"
	IconSparkles IconKind = "sparkles"
	IconQuote    IconKind = "quote"
	IconMapPin   IconKind = "map-pin"
	IconCalendar IconKind = "calendar"
	IconPackage  IconKind = "package"
	IconStar     IconKind = "star"
)

// IsValid returns true if the icon is one of the defined constants.
func (k IconKind) IsValid() bool {
	switch k {
	case IconHeart, IconBuilding, IconUsers, IconDiamond, IconCrown, IconSparkles,
		IconQuote, IconMapPin, IconCalendar, IconPackage, IconStar:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k IconKind) String() string {
	return string(k)
}

// ParseIcon resolves a content icon name ("Heart", "map-pin", "MapPin") to an
// IconKind. Unknown names resolve to def.
func ParseIcon(name string, def IconKind) IconKind {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if key == "mappin" {
		key = string(IconMapPin)
	}
	if k := IconKind(key); k.IsValid() {
		return k
	}
	return def
}
