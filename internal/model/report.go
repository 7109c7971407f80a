package model

type Report struct {
	ConfigDir  string   `json:"config_dir"`
	MirrorDir  string   `json:"mirror_dir"`
	Watched    []string `json:"watched"`
	Mismatched []string `json:"mismatched"`
}
