package svn

import (
	"encoding/xml"
	"strings"
)

type statusDocument struct {
	Targets []statusTarget `xml:"target"`
}

type statusTarget struct {
	Path    string        `xml:"path,attr"`
	Entries []statusEntry `xml:"entry"`
}

type statusEntry struct {
	Path     string `xml:"path,attr"`
	WCStatus struct {
		Item  string `xml:"item,attr"`
		Props string `xml:"props,attr"`
	} `xml:"wc-status"`
}

// statusRecord is a parsed entry plus the property state svn reports alongside it.
type statusRecord struct {
	PathStatus
	propsChanged bool
}

// ParseStatusXML converts the output of `svn status --xml` into path statuses
// in document order. Targets without entries contribute nothing.
func ParseStatusXML(data string) ([]PathStatus, error) {
	records, err := parseStatusRecords(data)
	if err != nil {
		return nil, err
	}

	out := make([]PathStatus, len(records))
	for i, r := range records {
		out[i] = r.PathStatus
	}
	return out, nil
}

func parseStatusRecords(data string) ([]statusRecord, error) {
	var doc statusDocument
	if err := xml.NewDecoder(strings.NewReader(data)).Decode(&doc); err != nil {
		return nil, &ParseError{What: "status xml", Err: err}
	}

	var out []statusRecord
	for _, target := range doc.Targets {
		for _, entry := range target.Entries {
			status, err := ParseWorkingCopyItem(entry.WCStatus.Item)
			if err != nil {
				return nil, &ParseError{What: "status entry " + entry.Path, Err: err}
			}
			out = append(out, statusRecord{
				PathStatus:   PathStatus{Path: entry.Path, Status: status},
				propsChanged: entry.WCStatus.Props == "modified" || entry.WCStatus.Props == "conflicted",
			})
		}
	}

	return out, nil
}

type propertiesDocument struct {
	Targets []struct {
		Path       string `xml:"path,attr"`
		Properties []struct {
			Name  string `xml:"name,attr"`
			Value string `xml:",chardata"`
		} `xml:"property"`
	} `xml:"target"`
}

// parsePropertiesXML decodes `svn proplist --xml` and `svn propget --xml`
// output into name/value pairs in document order.
func parsePropertiesXML(data string) ([][2]string, error) {
	var doc propertiesDocument
	if err := xml.NewDecoder(strings.NewReader(data)).Decode(&doc); err != nil {
		return nil, &ParseError{What: "properties xml", Err: err}
	}

	var out [][2]string
	for _, target := range doc.Targets {
		for _, prop := range target.Properties {
			out = append(out, [2]string{prop.Name, prop.Value})
		}
	}
	return out, nil
}
