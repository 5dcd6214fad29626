package svn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatusXML = `<?xml version="1.0" encoding="UTF-8"?>
<status>
<target
   path="wc">
<entry
   path="wc">
<wc-status
   props="none"
   item="normal"
   revision="12">
<commit
   revision="10">
<author>alice</author>
<date>2024-03-01T10:00:00.000000Z</date>
</commit>
</wc-status>
</entry>
<entry
   path="wc/notes.txt">
<wc-status
   props="modified"
   item="normal"
   revision="12">
</wc-status>
</entry>
<entry
   path="wc/new.go">
<wc-status
   props="none"
   item="added"
   revision="-1">
</wc-status>
</entry>
<entry
   path="wc/build">
<wc-status
   props="none"
   item="unversioned">
</wc-status>
</entry>
</target>
</status>
`

func TestParseStatusXML(t *testing.T) {
	got, err := ParseStatusXML(sampleStatusXML)
	require.NoError(t, err)

	assert.Equal(t, []PathStatus{
		{Path: "wc", Status: StatusNoModifications},
		{Path: "wc/notes.txt", Status: StatusNoModifications},
		{Path: "wc/new.go", Status: StatusAdded},
		{Path: "wc/build", Status: StatusUnversioned},
	}, got)
}

func TestParseStatusRecords_PropsChanged(t *testing.T) {
	records, err := parseStatusRecords(sampleStatusXML)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.False(t, records[0].propsChanged)
	assert.True(t, records[1].propsChanged)
	assert.False(t, records[2].propsChanged)
}

func TestParseStatusXML_EmptyTarget(t *testing.T) {
	got, err := ParseStatusXML(`<?xml version="1.0" encoding="UTF-8"?>
<status>
<target
   path="missing.txt">
</target>
</status>
`)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseStatusXML_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<status>\n"},
		{"unknown item", `<status><target path="x"><entry path="x"><wc-status item="sparkly"/></entry></target></status>`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatusXML(tt.data)

			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestParsePropertiesXML(t *testing.T) {
	got, err := parsePropertiesXML(`<?xml version="1.0" encoding="UTF-8"?>
<properties>
<target
   path="wc">
<property
   name="svn:ignore">*.log
build
</property>
<property
   name="svn:eol-style">native</property>
</target>
</properties>
`)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"svn:ignore", "*.log\nbuild\n"},
		{"svn:eol-style", "native"},
	}, got)
}
