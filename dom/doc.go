// Package dom is an in-memory document tree implementing the
// formatvalidate.Element and formatvalidate.Form capabilities.
//
//	root := dom.New("form", "id", "signup").Append(
//	    dom.New("div", "class", "control-group").Append(
//	        dom.New("div").Append(
//	            dom.New("input", "id", "email", "class", "fvEmail"),
//	        ),
//	    ),
//	)
//	doc := dom.NewDocument(root)
//	form, _ := doc.Form("#signup")
//
// Focus and blur are explicit: Focus moves focus silently, Tab moves it
// and fires the blur handlers of the element that lost it.
package dom
