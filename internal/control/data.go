// Package control holds the environment data shared by the commands.
package control

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
	Latitude    string
	Longitude   string
}
