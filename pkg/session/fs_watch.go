package session

import "github.com/fsnotify/fsnotify"

func (s *Server) handleFsEvent(event fsnotify.Event) error {
	if shouldForgetLibraryPath(event.Op) {
		s.outLog.Printf("library file '%s' removed; videos already in the catalog are kept\n", event.Name)

		return nil
	}

	if shouldReloadLibraryPath(event.Op) {
		s.outLog.Printf("reloading library file '%s'\n", event.Name)

		return s.loadLibraryFile(event.Name)
	}

	return nil
}

// WatchForFsChanges reloads library files into the catalog when they change on disk.
func (s *Server) WatchForFsChanges() {
	go func() {
		for {
			select {
			case event, ok := <-s.fsWatcher.Events:
				if !ok {
					return
				}

				err := s.handleFsEvent(event)
				if err != nil {
					s.errLog.Printf("could not handle event '%s' due to an error: %s\n", event, err)
				}
			case err, ok := <-s.fsWatcher.Errors:
				if !ok {
					return
				}

				s.outLog.Printf("fs watcher returned an error: %s\n", err)
			}
		}
	}()
}

func shouldReloadLibraryPath(op fsnotify.Op) bool {
	return op&(fsnotify.Create|fsnotify.Write) != 0
}

func shouldForgetLibraryPath(op fsnotify.Op) bool {
	return op&(fsnotify.Rename|fsnotify.Remove) != 0
}
