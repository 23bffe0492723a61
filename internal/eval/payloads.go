package eval

// payloads is the fixed set of secrets the evaluation pipeline hides
// under every parameter combination, named so a reader can spot which
// row came from which secret in the output CSV.
var payloads = []string{
	"Bike",
	"Hyperventilation",
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
}
