package gamedata

import (
	"fmt"
	"strings"
)

// RoomText holds the descriptive strings assigned to generated rooms.
type RoomText struct {
	Empty    string `yaml:"empty"`
	Entrance string `yaml:"entrance"`
	Danger   string `yaml:"danger"`
	Treasure string `yaml:"treasure"`
	Exit     string `yaml:"exit"`
	Boss     string `yaml:"boss"`
}

// LoadRoomText loads room descriptions from the embedded rooms.yaml file.
func LoadRoomText() (RoomText, error) {
	text, err := Load[RoomText]("rooms.yaml")
	if err != nil {
		return RoomText{}, err
	}
	if text.Empty == "" || text.Entrance == "" || text.Exit == "" {
		return RoomText{}, fmt.Errorf("rooms.yaml is missing required descriptions")
	}
	return text, nil
}

// MustLoadRoomText loads room descriptions, panicking on error.
func MustLoadRoomText() RoomText {
	text, err := LoadRoomText()
	if err != nil {
		panic(err)
	}
	return text
}

// At formats a description with a room coordinate when it has placeholders.
func At(format string, x, y int) string {
	if !strings.Contains(format, "%d") {
		return format
	}
	return fmt.Sprintf(format, x, y)
}
