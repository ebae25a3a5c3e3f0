package auth

import (
	"github.com/elliotchance/phpserialize"
)

// Permission is the decoded per-role flag set. The stored form is a legacy
// PHP-serialized bag keyed by flag name; only the flags this service consults
// are surfaced.
type Permission struct {
	BanPost          bool
	BanVisit         bool
	ManageReport     bool
	ManageTopicState bool
	ManageUser       bool
	UserBan          bool
}

// ParsePermission decodes a serialized permission bag. A nil or undecodable
// blob yields the empty set: a role without special permissions, not an error.
func ParsePermission(blob []byte) Permission {
	if len(blob) == 0 {
		return Permission{}
	}

	var bag map[interface{}]interface{}
	if err := phpserialize.Unmarshal(blob, &bag); err != nil {
		return Permission{}
	}

	flags := make(map[string]bool, len(bag))
	for key, value := range bag {
		name, ok := key.(string)
		if !ok {
			continue
		}
		flags[name] = flagSet(value)
	}

	return Permission{
		BanPost:          flags["ban_post"],
		BanVisit:         flags["ban_visit"],
		ManageReport:     flags["manage_report"],
		ManageTopicState: flags["manage_topic_state"],
		ManageUser:       flags["manage_user"],
		UserBan:          flags["user_ban"],
	}
}

// flagSet tolerates the bag's mixed value encoding ("1"/"0" strings from the
// legacy writer, occasionally real integers).
func flagSet(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return v == "1"
	case int64:
		return v == 1
	case int:
		return v == 1
	case bool:
		return v
	}
	return false
}
