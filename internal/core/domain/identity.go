package domain

import (
	"strings"

	"github.com/google/uuid"
)

// guidNamespace is the fixed UUIDv3 namespace for project identifier
// derivation. Changing it would re-identify every project on disk.
var guidNamespace = uuid.MustParse("9a1dd40f-4dfe-4e2c-b495-4f6b1c0d3a8e")

// guidSalt is appended to the unit name before hashing so that project
// identifiers never collide with identifiers derived from the bare name
// elsewhere.
const guidSalt = ".csproj"

// SolutionTypeGUID is the fixed project-type identifier for C# projects in
// solution files. Every listed project is of this one kind.
const SolutionTypeGUID = "FAE04EC0-301F-11D3-BF4B-00C04F79EFBC"

// ProjectGUID derives the stable identifier for a unit's project descriptor.
// It is a pure function of its inputs: the same (projectName, unitName) pair
// produces the same identifier across runs and across processes.
func ProjectGUID(projectName, unitName string) string {
	id := uuid.NewMD5(guidNamespace, []byte(projectName+unitName+guidSalt))
	return strings.ToUpper(id.String())
}
