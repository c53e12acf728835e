// Copyright 2020 Aleksandr Demakin. All rights reserved.

package integer

// MarshalJSON marshals x as a decimal string, like `"-1234"`.
func (x Integer) MarshalJSON() ([]byte, error) {
	s := x.String()
	data := make([]byte, 0, len(s)+2)
	data = append(data, '"')
	data = append(data, s...)
	return append(data, '"'), nil
}

// UnmarshalJSON unmarshals a string or a number into x.
// x must already have a width, see New.
func (x *Integer) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return Error.New("empty json")
	}
	if x.Nbits() == 0 {
		return Error.New("unmarshaling into an integer without a width")
	}
	v, err := Parse(x.Nbits(), string(data))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
