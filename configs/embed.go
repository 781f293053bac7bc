package configs

import _ "embed"

// ApplicationYAML is the bundled application.yml, used when PROPERTIES_FILE_PATH is unset.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the bundled messages.yml, used when MESSAGES_FILE_PATH is unset.
//
//go:embed messages.yml
var MessagesYAML []byte
