// Package protocol implements the binary wire protocol shared by the
// blackjack server, client, and web bridge.
//
// Every frame starts with a 4-byte magic cookie and a 1-byte type tag.
// Frames have fixed total lengths, so peers read exactly the expected
// number of bytes per message and never need delimiters:
//
//	Offer (UDP broadcast, 39 bytes):
//	  cookie(4) + type=0x02(1) + tcp_port(2) + name(32, NUL-padded)
//
//	Request (TCP, client opening frame, 38 bytes):
//	  cookie(4) + type=0x03(1) + num_rounds(1) + name(32, NUL-padded)
//
//	Payload server→client (9 bytes):
//	  cookie(4) + type=0x04(1) + result(1) + card(3)
//
//	Payload client→server (10 bytes):
//	  cookie(4) + type=0x04(1) + decision(5, NUL-padded)
//
// A card token is 3 bytes: the rank as two ASCII digits (01–13) followed
// by one raw suit byte (0–3). All multi-byte integers are big-endian.
//
// Decode functions treat malformed input as a soft failure: they return an
// error (or ok=false) and never panic. Callers decide whether a bad frame
// is worth dropping the connection over.
package protocol
