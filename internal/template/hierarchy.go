package template

// PlainHierarchy is the default capture skeleton: 22 joints, root translation
// plus Z/Y/X rotations on every joint.
const PlainHierarchy = `HIERARCHY
ROOT Hip
{
	OFFSET 0.000000 0.000000 0.000000
	CHANNELS 6 Xposition Yposition Zposition Zrotation Yrotation Xrotation
	JOINT LowerSpine
	{
		OFFSET 0.000 7.342 -4.513
		CHANNELS 3 Zrotation Yrotation Xrotation
		JOINT MiddleSpine
		{
			OFFSET 0.000 9.552 0.000
			CHANNELS 3 Zrotation Yrotation Xrotation
			JOINT Chest
			{
				OFFSET 0.000 13.460 0.000
				CHANNELS 3 Zrotation Yrotation Xrotation
				JOINT Neck
				{
					OFFSET 0.000 22.577 0.527
					CHANNELS 3 Zrotation Yrotation Xrotation
					JOINT Head
					{
						OFFSET 0.000 7.815 0.000
						CHANNELS 3 Zrotation Yrotation Xrotation
						End Site
						{
							OFFSET 0.000 17.367 0.000
						}
					}
				}
				JOINT RClavicle
				{
					OFFSET -2.779 20.840 0.000
					CHANNELS 3 Zrotation Yrotation Xrotation
					JOINT RShoulder
					{
						OFFSET -13.720 -3.473 0.869
						CHANNELS 3 Zrotation Yrotation Xrotation
						JOINT RForearm
						{
							OFFSET -27.472 -1.996 -1.202
							CHANNELS 3 Zrotation Yrotation Xrotation
							JOINT RHand
							{
								OFFSET -23.202 0.696 0.857
								CHANNELS 3 Zrotation Yrotation Xrotation
								End Site
								{
									OFFSET -13.904 -0.452 0.513
								}
							}
						}
					}
				}
				JOINT LClavicle
				{
					OFFSET 2.779 20.840 0.000
					CHANNELS 3 Zrotation Yrotation Xrotation
					JOINT LShoulder
					{
						OFFSET 13.720 -3.473 0.869
						CHANNELS 3 Zrotation Yrotation Xrotation
						JOINT LForearm
						{
							OFFSET 27.472 -1.996 -1.202
							CHANNELS 3 Zrotation Yrotation Xrotation
							JOINT LHand
							{
								OFFSET 23.202 0.696 0.857
								CHANNELS 3 Zrotation Yrotation Xrotation
								End Site
								{
									OFFSET 13.904 -0.452 0.513
								}
							}
						}
					}
				}
			}
		}
	}
	JOINT RThigh
	{
		OFFSET -7.815 0.394 0.000
		CHANNELS 3 Zrotation Yrotation Xrotation
		JOINT RShin
		{
			OFFSET -0.434 -37.947 0.000
			CHANNELS 3 Zrotation Yrotation Xrotation
			JOINT RFoot
			{
				OFFSET 0.000 -39.349 -0.356
				CHANNELS 3 Zrotation Yrotation Xrotation
				JOINT RToe
				{
					OFFSET 0.000 -3.461 10.729
					CHANNELS 3 Zrotation Yrotation Xrotation
					End Site
					{
						OFFSET 0.000 0.000 5.959
					}
				}
			}
		}
	}
	JOINT LThigh
	{
		OFFSET 7.815 0.394 0.000
		CHANNELS 3 Zrotation Yrotation Xrotation
		JOINT LShin
		{
			OFFSET 0.434 -37.947 0.000
			CHANNELS 3 Zrotation Yrotation Xrotation
			JOINT LFoot
			{
				OFFSET 0.000 -39.349 -0.356
				CHANNELS 3 Zrotation Yrotation Xrotation
				JOINT LToe
				{
					OFFSET 0.000 -3.461 10.729
					CHANNELS 3 Zrotation Yrotation Xrotation
					End Site
					{
						OFFSET 0.000 0.000 5.959
					}
				}
			}
		}
	}
}
`

// DummyHierarchy matches PlainHierarchy with a zero-offset dummy joint inserted
// above every branch.
const DummyHierarchy = `HIERARCHY
ROOT Hip
{
	OFFSET 0.000000 0.000000 0.000000
	CHANNELS 6 Xposition Yposition Zposition Zrotation Yrotation Xrotation
	JOINT LowerSpineDummy
	{
		OFFSET 0 0 0
		CHANNELS 3 Zrotation Yrotation Xrotation
		JOINT LowerSpine
		{
			OFFSET 0.000 7.342 -4.513
			CHANNELS 3 Zrotation Yrotation Xrotation
			JOINT MiddleSpine
			{
				OFFSET 0.000 9.552 0.000
				CHANNELS 3 Zrotation Yrotation Xrotation
				JOINT Chest
				{
					OFFSET 0.000 13.460 0.000
					CHANNELS 3 Zrotation Yrotation Xrotation
					JOINT NeckDummy
					{
						OFFSET 0 0 0
						CHANNELS 3 Zrotation Yrotation Xrotation
						JOINT Neck
						{
							OFFSET 0.000 22.577 0.527
							CHANNELS 3 Zrotation Yrotation Xrotation
							JOINT Head
							{
								OFFSET 0.000 7.815 0.000
								CHANNELS 3 Zrotation Yrotation Xrotation
								End Site
								{
									OFFSET 0.000 17.367 0.000
								}
							}
						}
					}

					JOINT RClavicleDummy
					{
						OFFSET 0 0 0
						CHANNELS 3 Zrotation Yrotation Xrotation
						JOINT RClavicle
						{
							OFFSET -2.779 20.840 0.000
							CHANNELS 3 Zrotation Yrotation Xrotation
							JOINT RShoulder
							{
								OFFSET -13.720 -3.473 0.869
								CHANNELS 3 Zrotation Yrotation Xrotation
								JOINT RForearm
								{
									OFFSET -27.472 -1.996 -1.202
									CHANNELS 3 Zrotation Yrotation Xrotation
									JOINT RHand
									{
										OFFSET -23.202 0.696 0.857
										CHANNELS 3 Zrotation Yrotation Xrotation
										End Site
										{
											OFFSET -13.904 -0.452 0.513
										}
									}
								}
							}
						}
					}

					JOINT LClavicleDummy
					{
						OFFSET 0 0 0
						CHANNELS 3 Zrotation Yrotation Xrotation
						JOINT LClavicle
						{
							OFFSET 2.779 20.840 0.000
							CHANNELS 3 Zrotation Yrotation Xrotation
							JOINT LShoulder
							{
								OFFSET 13.720 -3.473 0.869
								CHANNELS 3 Zrotation Yrotation Xrotation
								JOINT LForearm
								{
									OFFSET 27.472 -1.996 -1.202
									CHANNELS 3 Zrotation Yrotation Xrotation
									JOINT LHand
									{
										OFFSET 23.202 0.696 0.857
										CHANNELS 3 Zrotation Yrotation Xrotation
										End Site
										{
											OFFSET 13.904 -0.452 0.513
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}

	JOINT RThighDummy
	{
		OFFSET 0 0 0
		CHANNELS 3 Zrotation Yrotation Xrotation
		JOINT RThigh
		{
			OFFSET -7.815 0.394 0.000
			CHANNELS 3 Zrotation Yrotation Xrotation
			JOINT RShin
			{
				OFFSET -0.434 -37.947 0.000
				CHANNELS 3 Zrotation Yrotation Xrotation
				JOINT RFoot
				{
					OFFSET 0.000 -39.349 -0.356
					CHANNELS 3 Zrotation Yrotation Xrotation
					JOINT RToe
					{
						OFFSET 0.000 -3.461 10.729
						CHANNELS 3 Zrotation Yrotation Xrotation
						End Site
						{
							OFFSET 0.000 0.000 5.959
						}
					}
				}
			}
		}
	}

	JOINT LThighDummy
	{
		OFFSET 0 0 0
		CHANNELS 3 Zrotation Yrotation Xrotation
		JOINT LThigh
		{
			OFFSET 7.815 0.394 0.000
			CHANNELS 3 Zrotation Yrotation Xrotation
			JOINT LShin
			{
				OFFSET 0.434 -37.947 0.000
				CHANNELS 3 Zrotation Yrotation Xrotation
				JOINT LFoot
				{
					OFFSET 0.000 -39.349 -0.356
					CHANNELS 3 Zrotation Yrotation Xrotation
					JOINT LToe
					{
						OFFSET 0.000 -3.461 10.729
						CHANNELS 3 Zrotation Yrotation Xrotation
						End Site
						{
							OFFSET 0.000 0.000 5.959
						}
					}
				}
			}
		}
	}
}
`
