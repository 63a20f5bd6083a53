package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"twitch_prediction_manager/internal/models"

	"github.com/sirupsen/logrus"
)

// TSH writes one file per player; only the first player of each team is used.
const playerNamePathFmt = "out/score/1/team/%d/player/1/mergedOnlyName.txt"

type FileClient struct {
	scoreFolder string
}

func NewFileClient(scoreFolder string) *FileClient {
	return &FileClient{
		scoreFolder: scoreFolder,
	}
}

func (fc *FileClient) PlayerNamePath(position int) string {
	return filepath.Join(fc.scoreFolder, fmt.Sprintf(playerNamePathFmt, position))
}

// ReadPlayerName never fails: anything unusable falls back to the placeholder name.
func (fc *FileClient) ReadPlayerName(position int) string {
	if position < 1 || position > 2 {
		return models.PlaceholderPlayerName
	}

	path := fc.PlayerNamePath(position)

	content, err := os.ReadFile(path)
	if err != nil {
		logrus.Debugf("cannot read player %d name from %s: %v", position, path, err)
		return models.PlaceholderPlayerName
	}

	name := strings.TrimSpace(string(content))
	if name == "" {
		logrus.Debugf("player %d name file %s is empty", position, path)
		return models.PlaceholderPlayerName
	}

	return name
}
