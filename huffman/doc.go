/*
Package huffman implements the codebook decoder shared by floor 1 and
residue decode: building a canonical prefix-code tree from per-entry code
lengths, decoding entry numbers off a bit reader, and mapping entries to
vector-quantized coordinate vectors for VQ lookup types 1 and 2.

	tree, err := huffman.NewTree(codeLengths)
	if err != nil {
		return err
	}
	entry := tree.Decode(bits)
	vector := lookup.Vector(entry)

This path is the innermost hot loop of the decoder: residue decode calls
it once per partition dimension across every channel and every pass, so
Decode avoids allocation and error returns, leaving overrun handling to
the caller.
*/
package huffman
