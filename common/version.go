package common

const ForwardListVersion = "1.2.0"
