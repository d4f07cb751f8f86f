package testutil

// SampleURN is the URN served by the sample CTS server
const SampleURN = "urn:cts:greekLit:tlg2046.tlg001.perseus-grc2"

// SampleTEI is a CTS GetPassage reply with two books. Book 1 has an
// editorial note inside line 2, an unnumbered line and a suffixed line 2a.
const SampleTEI = `<?xml version="1.0" encoding="UTF-8"?>
<GetPassage xmlns="http://chs.harvard.edu/xmlns/cts">
  <request>
    <requestName>GetPassage</requestName>
    <requestUrn>urn:cts:greekLit:tlg2046.tlg001.perseus-grc2</requestUrn>
  </request>
  <reply>
    <urn>urn:cts:greekLit:tlg2046.tlg001.perseus-grc2</urn>
    <passage>
      <TEI xmlns="http://www.tei-c.org/ns/1.0">
        <text>
          <body>
            <div type="edition" n="urn:cts:greekLit:tlg2046.tlg001.perseus-grc2">
              <div type="textpart" subtype="book" n="1">
                <l n="1">θεὸς φέρει</l>
                <l n="2">οἱ <note>fort. ἄλλοι</note>ἵπποι</l>
                <l>unnumbered heading</l>
                <l n="2a">   ἀνὰ
                  ἄστυ  </l>
              </div>
              <div type="textpart" subtype="book" n="2">
                <l n="1">Ζεὺς</l>
                <l n="2"></l>
              </div>
            </div>
          </body>
        </text>
      </TEI>
    </passage>
  </reply>
</GetPassage>
`

// SampleSpeechList is an offline speech list covering 1.2 to 1.2a
const SampleSpeechList = `# speeches in the sample passage
1.2 - 1.2a
`

// SampleDICESPage1 is the first page of a DICES speech listing. The
// placeholder {next} is replaced with the URL of page 2.
const SampleDICESPage1 = `{
  "count": 2,
  "next": "{next}",
  "previous": null,
  "results": [
    {"id": 101, "l_fi": "1.2", "l_la": "1.2a", "type": "S"}
  ]
}`

// SampleDICESPage2 is the last page of a DICES speech listing
const SampleDICESPage2 = `{
  "count": 2,
  "next": null,
  "previous": null,
  "results": [
    {"id": 102, "l_fi": "2.1", "l_la": "2.1", "type": "S"}
  ]
}`
