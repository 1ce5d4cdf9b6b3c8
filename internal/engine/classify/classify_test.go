package classify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/slnsync/internal/engine/classify"
)

func TestClassifier_Classify(t *testing.T) {
	c := classify.New(nil, nil)

	assert.Equal(t, classify.TypeSource, c.Classify(".cs"))
	assert.Equal(t, classify.TypeSource, c.Classify("CS"), "extension matching is case-insensitive and dot-optional")
	assert.Equal(t, classify.TypeNone, c.Classify(".shader"))
	assert.Equal(t, classify.TypeNone, c.Classify(".json"))
	assert.Equal(t, classify.TypeNone, c.Classify(".unknown"))
}

func TestClassifier_ExtraExtensionsNeverBecomeSource(t *testing.T) {
	c := classify.New([]string{".proto", "fbs"}, nil)

	assert.True(t, c.IsRecognized(".proto"))
	assert.True(t, c.IsRecognized(".fbs"))
	assert.Equal(t, classify.TypeNone, c.Classify(".proto"))
	assert.False(t, c.IsSource("Assets/schema.proto"))
}

func TestClassifier_AlwaysEligibleExtensions(t *testing.T) {
	c := classify.New(nil, nil)

	assert.True(t, c.IsEligible("Plugins/lib.dll"))
	assert.True(t, c.IsEligible("Assets/Scripts/Runtime.asmdef"))
	assert.False(t, c.IsSource("Plugins/lib.dll"))
}

func TestClassifier_ExclusionWinsOverRecognition(t *testing.T) {
	c := classify.New(nil, func(path string) bool {
		return strings.HasPrefix(path, "Packages/internal/")
	})

	assert.True(t, c.IsEligible("Assets/Code/A.cs"))
	assert.False(t, c.IsEligible("Packages/internal/Code/A.cs"))
	assert.False(t, c.IsSource("Packages/internal/Code/A.cs"))
}

func TestClassifier_UnrecognizedExtensionIneligible(t *testing.T) {
	c := classify.New(nil, nil)

	assert.False(t, c.IsEligible("Assets/notes.md"))
	assert.False(t, c.IsEligible("Assets/NoExtension"))
}
