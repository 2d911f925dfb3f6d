package schema

import (
	"time"

	"github.com/odvcencio/cfapi/pkg/fingerprint"
)

// File is one uploaded file of a mod.
type File struct {
	ID                   int                     `json:"id"`
	GameID               int                     `json:"gameId"`
	ModID                int                     `json:"modId"`
	IsAvailable          bool                    `json:"isAvailable"`
	DisplayName          string                  `json:"displayName"`
	FileName             string                  `json:"fileName"`
	ReleaseType          FileReleaseType         `json:"releaseType"`
	FileStatus           FileStatus              `json:"fileStatus"`
	Hashes               []FileHash              `json:"hashes"`
	FileDate             time.Time               `json:"fileDate"`
	FileLength           int64                   `json:"fileLength"` // bytes
	DownloadCount        int64                   `json:"downloadCount"`
	FileSizeOnDisk       *int64                  `json:"fileSizeOnDisk,omitempty"`
	DownloadURL          OptionalURL             `json:"downloadUrl"`
	GameVersions         []string                `json:"gameVersions"`
	SortableGameVersions []SortableGameVersion   `json:"sortableGameVersions"`
	Dependencies         []FileDependency        `json:"dependencies"`
	ExposeAsAlternative  *bool                   `json:"exposeAsAlternative,omitempty"`
	ParentProjectFileID  *int                    `json:"parentProjectFileId,omitempty"`
	AlternateFileID      *int                    `json:"alternateFileId,omitempty"`
	IsServerPack         *bool                   `json:"isServerPack,omitempty"`
	ServerPackFileID     *int                    `json:"serverPackFileId,omitempty"`
	IsEarlyAccessContent *bool                   `json:"isEarlyAccessContent,omitempty"`
	EarlyAccessEndDate   OptionalTime            `json:"earlyAccessEndDate"`
	FileFingerprint      fingerprint.Fingerprint `json:"fileFingerprint"`
	Modules              []FileModule            `json:"modules"`
}

func (f *File) UnmarshalJSON(data []byte) error {
	type plain File
	return decodeStrict(data, "File", (*plain)(f),
		"id", "gameId", "modId", "isAvailable", "displayName", "fileName",
		"releaseType", "fileStatus", "hashes", "fileDate", "fileLength",
		"downloadCount", "gameVersions", "sortableGameVersions", "dependencies",
		"fileFingerprint", "modules")
}

// Hash returns the hex digest for algo, if the service reported one.
func (f File) Hash(algo HashAlgo) (string, bool) {
	for _, h := range f.Hashes {
		if h.Algo == algo {
			return h.Value, true
		}
	}
	return "", false
}

// FileIndex summarizes a latest file for one game version.
type FileIndex struct {
	GameVersion       string          `json:"gameVersion"`
	FileID            int             `json:"fileId"`
	Filename          string          `json:"filename"`
	ReleaseType       FileReleaseType `json:"releaseType"`
	GameVersionTypeID *int            `json:"gameVersionTypeId,omitempty"`
	ModLoader         *ModLoaderType  `json:"modLoader,omitempty"`
}

func (i *FileIndex) UnmarshalJSON(data []byte) error {
	type plain FileIndex
	return decodeStrict(data, "FileIndex", (*plain)(i),
		"gameVersion", "fileId", "filename", "releaseType")
}

// FileHash is a hex digest of a file's contents.
type FileHash struct {
	Value string   `json:"value"`
	Algo  HashAlgo `json:"algo"`
}

func (h *FileHash) UnmarshalJSON(data []byte) error {
	type plain FileHash
	return decodeStrict(data, "FileHash", (*plain)(h), "value", "algo")
}

// FileDependency links a file to another mod.
type FileDependency struct {
	ModID        int              `json:"modId"`
	RelationType FileRelationType `json:"relationType"`
}

func (d *FileDependency) UnmarshalJSON(data []byte) error {
	type plain FileDependency
	return decodeStrict(data, "FileDependency", (*plain)(d), "modId", "relationType")
}

// FileModule is a top-level entry of a file archive and its fingerprint.
type FileModule struct {
	Name        string                  `json:"name"`
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
}

func (m *FileModule) UnmarshalJSON(data []byte) error {
	type plain FileModule
	return decodeStrict(data, "FileModule", (*plain)(m), "name", "fingerprint")
}
