package model

// PacketTypeData is the packet_type value of a data packet. Every other
// value denotes trigger, configuration, timestamp or sync packets.
const PacketTypeData = 0

// NumChannels is the number of channels of a LArPix chip.
const NumChannels = 64

// PacketRecord is an entry of the packets collection of a dataset.
type PacketRecord struct {
	// PacketType discriminates data packets from other packets.
	PacketType uint8

	// ChannelID is the channel that produced the packet (0-63).
	ChannelID uint8

	// Dataword is the raw ADC reading.
	Dataword uint8
}

// IsData returns whether this is a data packet.
func (pr PacketRecord) IsData() bool {
	return pr.PacketType == PacketTypeData
}
