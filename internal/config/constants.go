package config

const SourceFileExt = ".tmx"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".tmx", ".traitmix"}

// GeneratedSuffix is inserted before the extension of emitted files
// (input.tmx -> input.gen.tmx).
const GeneratedSuffix = ".gen"

// ConfigFileName is the project configuration file searched for upward from
// the first input file's directory.
const ConfigFileName = "traitmix.yaml"
