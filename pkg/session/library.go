package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sarpt/tube-cli/pkg/state/pkg/catalog"
)

var (
	ErrJSONFileNotALibraryFile = errors.New("a JSON file is not a valid library file - 'TubeCliLibrary' either not specified or false")
)

// LibraryVideo describes a single video entry of a library file.
type LibraryVideo struct {
	ID         string   `json:"Id"`
	Title      string   `json:"Title"`
	Tags       []string `json:"Tags"`
	FlagReason string   `json:"FlagReason"`
}

// LibraryFile describes a JSON file with videos to be served by the session.
type LibraryFile struct {
	TubeCliLibrary bool           `json:"TubeCliLibrary"`
	Name           string         `json:"Name"`
	Videos         []LibraryVideo `json:"Videos"`
}

// LoadLibraries reads library files under the provided paths into the catalog
// and registers the files for watching.
func (s *Server) LoadLibraries(paths []string) error {
	for _, path := range paths {
		err := s.loadLibraryFile(path)
		if err != nil {
			return fmt.Errorf("could not load library file '%s': %w", path, err)
		}

		err = s.fsWatcher.Add(path)
		if err != nil {
			return fmt.Errorf("could not watch library file '%s': %w", path, err)
		}
	}

	return nil
}

func (s *Server) loadLibraryFile(path string) error {
	libraryFile, err := s.readLibraryFile(path)
	if err != nil {
		return err
	}

	for _, libraryVideo := range libraryFile.Videos {
		flag := catalog.Unflagged()
		if libraryVideo.FlagReason != "" {
			flag = catalog.FlaggedWith(libraryVideo.FlagReason)
		}

		s.statesRepository.Catalog().Add(catalog.NewVideo(catalog.Config{
			ID:    libraryVideo.ID,
			Title: libraryVideo.Title,
			Tags:  libraryVideo.Tags,
			Flag:  flag,
		}))
	}

	s.outLog.Printf("added %d videos from library '%s' at path '%s'", len(libraryFile.Videos), libraryFile.Name, path)

	return nil
}

func (s *Server) readLibraryFile(path string) (LibraryFile, error) {
	var library LibraryFile

	filePayload, err := os.ReadFile(path)
	if err != nil {
		return library, err
	}

	err = json.Unmarshal(filePayload, &library)
	if err != nil {
		return library, err
	}

	if !library.TubeCliLibrary {
		return library, ErrJSONFileNotALibraryFile
	}

	return library, nil
}
