package schema

import "strconv"

// FileReleaseType is the maturity channel of a file.
type FileReleaseType uint8

const (
	ReleaseTypeRelease FileReleaseType = 1
	ReleaseTypeBeta    FileReleaseType = 2
	ReleaseTypeAlpha   FileReleaseType = 3
)

func (t FileReleaseType) Valid() bool { return t >= ReleaseTypeRelease && t <= ReleaseTypeAlpha }

func (t FileReleaseType) String() string {
	switch t {
	case ReleaseTypeRelease:
		return "release"
	case ReleaseTypeBeta:
		return "beta"
	case ReleaseTypeAlpha:
		return "alpha"
	}
	return "FileReleaseType(" + strconv.Itoa(int(t)) + ")"
}

func (t *FileReleaseType) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "FileReleaseType", FileReleaseType.Valid)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// FileStatus is the moderation/processing state of a file.
type FileStatus uint8

const (
	FileStatusProcessing         FileStatus = 1
	FileStatusChangesRequired    FileStatus = 2
	FileStatusUnderReview        FileStatus = 3
	FileStatusApproved           FileStatus = 4
	FileStatusRejected           FileStatus = 5
	FileStatusMalwareDetected    FileStatus = 6
	FileStatusDeleted            FileStatus = 7
	FileStatusArchived           FileStatus = 8
	FileStatusTesting            FileStatus = 9
	FileStatusReleased           FileStatus = 10
	FileStatusReadyForReview     FileStatus = 11
	FileStatusDeprecated         FileStatus = 12
	FileStatusBaking             FileStatus = 13
	FileStatusAwaitingPublishing FileStatus = 14
	FileStatusFailedPublishing   FileStatus = 15
	FileStatusCooking            FileStatus = 16
	FileStatusCooked             FileStatus = 17
	FileStatusUnderManualReview  FileStatus = 18
	FileStatusScanningForMalware FileStatus = 19
	FileStatusProcessingFile     FileStatus = 20
	FileStatusPendingRelease     FileStatus = 21
	FileStatusReadyForCooking    FileStatus = 22
	FileStatusPostProcessing     FileStatus = 23
)

var fileStatusNames = [...]string{
	FileStatusProcessing:         "processing",
	FileStatusChangesRequired:    "changes-required",
	FileStatusUnderReview:        "under-review",
	FileStatusApproved:           "approved",
	FileStatusRejected:           "rejected",
	FileStatusMalwareDetected:    "malware-detected",
	FileStatusDeleted:            "deleted",
	FileStatusArchived:           "archived",
	FileStatusTesting:            "testing",
	FileStatusReleased:           "released",
	FileStatusReadyForReview:     "ready-for-review",
	FileStatusDeprecated:         "deprecated",
	FileStatusBaking:             "baking",
	FileStatusAwaitingPublishing: "awaiting-publishing",
	FileStatusFailedPublishing:   "failed-publishing",
	FileStatusCooking:            "cooking",
	FileStatusCooked:             "cooked",
	FileStatusUnderManualReview:  "under-manual-review",
	FileStatusScanningForMalware: "scanning-for-malware",
	FileStatusProcessingFile:     "processing-file",
	FileStatusPendingRelease:     "pending-release",
	FileStatusReadyForCooking:    "ready-for-cooking",
	FileStatusPostProcessing:     "post-processing",
}

func (s FileStatus) Valid() bool { return s >= FileStatusProcessing && s <= FileStatusPostProcessing }

func (s FileStatus) String() string {
	if s.Valid() {
		return fileStatusNames[s]
	}
	return "FileStatus(" + strconv.Itoa(int(s)) + ")"
}

func (s *FileStatus) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "FileStatus", FileStatus.Valid)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// HashAlgo identifies the digest in a FileHash.
type HashAlgo uint8

const (
	HashAlgoSHA1 HashAlgo = 1
	HashAlgoMD5  HashAlgo = 2
)

func (a HashAlgo) Valid() bool { return a == HashAlgoSHA1 || a == HashAlgoMD5 }

func (a HashAlgo) String() string {
	switch a {
	case HashAlgoSHA1:
		return "sha1"
	case HashAlgoMD5:
		return "md5"
	}
	return "HashAlgo(" + strconv.Itoa(int(a)) + ")"
}

func (a *HashAlgo) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "HashAlgo", HashAlgo.Valid)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// FileRelationType describes how a file depends on another mod.
type FileRelationType uint8

const (
	RelationEmbeddedLibrary    FileRelationType = 1
	RelationOptionalDependency FileRelationType = 2
	RelationRequiredDependency FileRelationType = 3
	RelationTool               FileRelationType = 4
	RelationIncompatible       FileRelationType = 5
	RelationInclude            FileRelationType = 6
)

func (r FileRelationType) Valid() bool {
	return r >= RelationEmbeddedLibrary && r <= RelationInclude
}

func (r FileRelationType) String() string {
	switch r {
	case RelationEmbeddedLibrary:
		return "embedded-library"
	case RelationOptionalDependency:
		return "optional"
	case RelationRequiredDependency:
		return "required"
	case RelationTool:
		return "tool"
	case RelationIncompatible:
		return "incompatible"
	case RelationInclude:
		return "include"
	}
	return "FileRelationType(" + strconv.Itoa(int(r)) + ")"
}

func (r *FileRelationType) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "FileRelationType", FileRelationType.Valid)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ModStatus is the moderation state of a mod.
type ModStatus uint8

const (
	ModStatusNew             ModStatus = 1
	ModStatusChangesRequired ModStatus = 2
	ModStatusUnderSoftReview ModStatus = 3
	ModStatusApproved        ModStatus = 4
	ModStatusRejected        ModStatus = 5
	ModStatusChangesMade     ModStatus = 6
	ModStatusInactive        ModStatus = 7
	ModStatusAbandoned       ModStatus = 8
	ModStatusDeleted         ModStatus = 9
	ModStatusUnderReview     ModStatus = 10
)

var modStatusNames = [...]string{
	ModStatusNew:             "new",
	ModStatusChangesRequired: "changes-required",
	ModStatusUnderSoftReview: "under-soft-review",
	ModStatusApproved:        "approved",
	ModStatusRejected:        "rejected",
	ModStatusChangesMade:     "changes-made",
	ModStatusInactive:        "inactive",
	ModStatusAbandoned:       "abandoned",
	ModStatusDeleted:         "deleted",
	ModStatusUnderReview:     "under-review",
}

func (s ModStatus) Valid() bool { return s >= ModStatusNew && s <= ModStatusUnderReview }

func (s ModStatus) String() string {
	if s.Valid() {
		return modStatusNames[s]
	}
	return "ModStatus(" + strconv.Itoa(int(s)) + ")"
}

func (s *ModStatus) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "ModStatus", ModStatus.Valid)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ModLoaderType is the mod loader a file targets. Zero is a valid code
// meaning any loader.
type ModLoaderType uint8

const (
	ModLoaderAny        ModLoaderType = 0
	ModLoaderForge      ModLoaderType = 1
	ModLoaderCauldron   ModLoaderType = 2
	ModLoaderLiteLoader ModLoaderType = 3
	ModLoaderFabric     ModLoaderType = 4
	ModLoaderQuilt      ModLoaderType = 5
	ModLoaderNeoForge   ModLoaderType = 6
)

var modLoaderNames = [...]string{
	ModLoaderAny:        "any",
	ModLoaderForge:      "forge",
	ModLoaderCauldron:   "cauldron",
	ModLoaderLiteLoader: "liteloader",
	ModLoaderFabric:     "fabric",
	ModLoaderQuilt:      "quilt",
	ModLoaderNeoForge:   "neoforge",
}

func (l ModLoaderType) Valid() bool { return l <= ModLoaderNeoForge }

func (l ModLoaderType) String() string {
	if l.Valid() {
		return modLoaderNames[l]
	}
	return "ModLoaderType(" + strconv.Itoa(int(l)) + ")"
}

func (l *ModLoaderType) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "ModLoaderType", ModLoaderType.Valid)
	if err != nil {
		return err
	}
	*l = v
	return nil
}
