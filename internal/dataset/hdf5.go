package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/larpix/pedstats/internal/model"
	"gonum.org/v1/hdf5"
)

// errNotCompound indicates that the packets dataset is not a table.
var errNotCompound = errors.New("packets dataset is not a compound type")

// h5Packet is the in-memory layout of the packets we write.
type h5Packet struct {
	PacketType uint8
	ChannelID  uint8
	Dataword   uint8
}

// h5Member describes where a compound member lives inside a row.
type h5Member struct {
	offset int
	size   int
}

// h5Layout locates the members we need inside a packets row. DAQ files
// carry many more members (chip_id, timestamp, ...), which we skip.
type h5Layout struct {
	packetType h5Member
	channelID  h5Member
	dataword   h5Member
}

// h5IntegerTypes contains the member types we know how to decode, that is
// unsigned little-endian integers. A single byte has no byte order.
var h5IntegerTypes = []struct {
	dtype *hdf5.Datatype
	size  int
}{
	{hdf5.T_STD_U8LE, 1},
	{hdf5.T_STD_U8BE, 1},
	{hdf5.T_STD_U16LE, 2},
	{hdf5.T_STD_U32LE, 4},
	{hdf5.T_STD_U64LE, 8},
}

// h5MemberSize returns the size of mtype or an error if we cannot
// decode members of type mtype.
func h5MemberSize(mtype *hdf5.Datatype) (int, error) {
	for _, entry := range h5IntegerTypes {
		if mtype.Equal(entry.dtype) {
			return entry.size, nil
		}
	}
	return 0, errUnsupportedMember
}

// errUnsupportedMember indicates a member that is not an unsigned
// little-endian integer.
var errUnsupportedMember = errors.New("not an unsigned little-endian integer")

// newH5Layout inspects the compound type of the packets dataset.
func newH5Layout(ctype *hdf5.CompoundType) (*h5Layout, error) {
	wanted := map[string]bool{"packet_type": true, "channel_id": true, "dataword": true}
	members := map[string]*h5Member{}
	for idx := 0; idx < ctype.NMembers(); idx++ {
		name := ctype.MemberName(idx)
		if !wanted[name] {
			continue
		}
		mtype, err := ctype.MemberType(idx)
		if err != nil {
			return nil, err
		}
		size, err := h5MemberSize(mtype)
		mtype.Close()
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", name, err)
		}
		members[name] = &h5Member{offset: ctype.MemberOffset(idx), size: size}
	}
	layout := &h5Layout{}
	for name, dst := range map[string]*h5Member{
		"packet_type": &layout.packetType,
		"channel_id":  &layout.channelID,
		"dataword":    &layout.dataword,
	} {
		member, found := members[name]
		if !found {
			return nil, fmt.Errorf("packets dataset lacks the %s member", name)
		}
		*dst = *member
	}
	return layout, nil
}

// decode decodes a single little-endian row.
func (l *h5Layout) decode(row []byte) (model.PacketRecord, error) {
	var (
		values [3]uint64
		names  = [3]string{"packet_type", "channel_id", "dataword"}
	)
	for idx, member := range []h5Member{l.packetType, l.channelID, l.dataword} {
		field := row[member.offset : member.offset+member.size]
		switch member.size {
		case 1:
			values[idx] = uint64(field[0])
		case 2:
			values[idx] = uint64(binary.LittleEndian.Uint16(field))
		case 4:
			values[idx] = uint64(binary.LittleEndian.Uint32(field))
		case 8:
			values[idx] = binary.LittleEndian.Uint64(field)
		}
		if values[idx] > 0xff {
			return model.PacketRecord{}, fmt.Errorf("%s value %d out of range", names[idx], values[idx])
		}
	}
	record := model.PacketRecord{
		PacketType: uint8(values[0]),
		ChannelID:  uint8(values[1]),
		Dataword:   uint8(values[2]),
	}
	return record, nil
}

// readHDF5 reads every row of the packets dataset of an HDF5 file.
func readHDF5(path string) ([]model.PacketRecord, error) {
	file, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	dset, err := file.OpenDataset(PacketsCollection)
	if err != nil {
		return nil, err
	}
	defer dset.Close()

	dtype, err := dset.Datatype()
	if err != nil {
		return nil, err
	}
	defer dtype.Close()
	if dtype.Class() != hdf5.T_COMPOUND {
		return nil, errNotCompound
	}
	layout, err := newH5Layout(&hdf5.CompoundType{Datatype: *dtype})
	if err != nil {
		return nil, err
	}

	space := dset.Space()
	defer space.Close()
	count := space.SimpleExtentNPoints()
	if count <= 0 {
		return []model.PacketRecord{}, nil
	}

	// read the raw rows using the file layout and decode the members
	// we need using the offsets of the compound type
	rowsize := int(dtype.Size())
	raw := make([]byte, count*rowsize)
	if err := dset.Read(&raw); err != nil {
		return nil, err
	}
	records := make([]model.PacketRecord, 0, count)
	for idx := 0; idx < count; idx++ {
		record, err := layout.decode(raw[idx*rowsize : (idx+1)*rowsize])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", idx, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// WriteHDF5 writes records as the packets dataset of a new HDF5 file at
// path, truncating any existing file.
func WriteHDF5(path string, records []model.PacketRecord) error {
	ctype, err := hdf5.NewCompoundType(3)
	if err != nil {
		return err
	}
	defer ctype.Close()
	for idx, name := range []string{"packet_type", "channel_id", "dataword"} {
		if err := ctype.Insert(name, idx, hdf5.T_STD_U8LE); err != nil {
			return err
		}
	}

	file, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return err
	}
	defer file.Close()

	space, err := hdf5.CreateSimpleDataspace([]uint{uint(len(records))}, nil)
	if err != nil {
		return err
	}
	defer space.Close()

	dset, err := file.CreateDataset(PacketsCollection, &ctype.Datatype, space)
	if err != nil {
		return err
	}
	defer dset.Close()

	if len(records) <= 0 {
		return nil
	}
	rows := make([]h5Packet, 0, len(records))
	for _, record := range records {
		rows = append(rows, h5Packet{
			PacketType: record.PacketType,
			ChannelID:  record.ChannelID,
			Dataword:   record.Dataword,
		})
	}
	return dset.Write(&rows)
}
