package dialect

import "encoding/json"

// Each paragraph marshals with a "type" discriminator so the JSON form of a
// Document is self-describing.

func marshalTagged(kind Kind, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	tag, err := json.Marshal(map[string]Kind{"type": kind})
	if err != nil {
		return nil, err
	}
	if string(body) == "{}" {
		return tag, nil
	}
	// Splice {"type":...} in front of the remaining fields.
	out := make([]byte, 0, len(tag)+len(body))
	out = append(out, tag[:len(tag)-1]...)
	out = append(out, ',')
	out = append(out, body[1:]...)
	return out, nil
}

func (p TextParagraph) MarshalJSON() ([]byte, error) {
	type plain TextParagraph
	return marshalTagged(KindText, plain(p))
}

func (p HeaderParagraph) MarshalJSON() ([]byte, error) {
	type plain HeaderParagraph
	return marshalTagged(KindHeader, plain(p))
}

func (p ListParagraph) MarshalJSON() ([]byte, error) {
	type plain ListParagraph
	return marshalTagged(KindList, plain(p))
}

func (p MediaParagraph) MarshalJSON() ([]byte, error) {
	type plain MediaParagraph
	return marshalTagged(KindMedia, plain(p))
}

func (p FootnoteParagraph) MarshalJSON() ([]byte, error) {
	type plain FootnoteParagraph
	return marshalTagged(KindFootnote, plain(p))
}

func (p QuoteParagraph) MarshalJSON() ([]byte, error) {
	type plain QuoteParagraph
	return marshalTagged(KindQuote, plain(p))
}

func (p CodeParagraph) MarshalJSON() ([]byte, error) {
	type plain CodeParagraph
	return marshalTagged(KindCode, plain(p))
}

func (p TableParagraph) MarshalJSON() ([]byte, error) {
	type plain TableParagraph
	return marshalTagged(KindTable, plain(p))
}
