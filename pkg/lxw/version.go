package lxw

// Version is the library version reported at the boundary.
const Version = "1.2.0"

// VersionID is the numeric form of Version, mirroring lxw_version_id.
const VersionID uint16 = 120
